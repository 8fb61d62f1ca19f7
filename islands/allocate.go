package islands

import (
	"math"
	"sort"

	"github.com/corvusgraph/pursuit/graph"
)

// AllocateCops splits nCops across components (graph.Components() order)
// in proportion to each component's pursuit demand. If there are fewer
// cops than components, the smallest components get one cop each until
// cops run out and the rest get none; otherwise every component gets at
// least one cop, with any remainder distributed by largest-remainder
// rounding of the demand proportions (size proportions if every demand
// is zero).
//
// Grounded on original_source/engine/modules/islands/choosing.py's
// cop-allocation routine.
func AllocateCops(g *graph.Graph, components [][]string, nCops int) []int {
	n := len(components)
	out := make([]int, n)
	if n == 0 || nCops <= 0 {
		return out
	}

	if nCops < n {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return len(components[order[a]]) < len(components[order[b]])
		})
		for i := 0; i < nCops; i++ {
			out[order[i]] = 1
		}
		return out
	}

	demands := make([]float64, n)
	var total float64
	for i, c := range components {
		demands[i] = demand(g, c)
		total += demands[i]
	}
	if total <= 0 {
		for i, c := range components {
			demands[i] = float64(len(c))
			total += demands[i]
		}
	}

	for i := range out {
		out[i] = 1
	}
	remainder := nCops - n
	if remainder <= 0 {
		return out
	}

	type share struct {
		idx  int
		frac float64
	}
	shares := make([]share, n)
	allocated := 0
	for i, d := range demands {
		exact := d / total * float64(remainder)
		whole := math.Floor(exact)
		out[i] += int(whole)
		allocated += int(whole)
		shares[i] = share{idx: i, frac: exact - whole}
	}

	left := remainder - allocated
	sort.Slice(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
	for i := 0; i < left; i++ {
		out[shares[i%n].idx]++
	}
	return out
}
