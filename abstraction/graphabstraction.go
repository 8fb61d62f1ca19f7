package abstraction

import "time"

// GraphAbstraction is one level of the abstraction hierarchy: a
// coarsened graph obtained by pooling the level below it, together with
// the mappings needed to translate vertices up and down the hierarchy,
// and the two lazily-populated stores search strategies consult.
//
// Grounded on original_source/.../abstraction/graph.py's GraphAbstraction.
type GraphAbstraction struct {
	graph *levelGraph

	// VertexMapping maps a vertex of the level below to its vertex in
	// this level.
	VertexMapping map[int]int
	// InverseVertexMapping maps a vertex in this level back to the set
	// of vertices of the level below that were pooled into it.
	InverseVertexMapping map[int][]int
	// LiteralVertexMapping maps a literal (bottom-level) vertex
	// directly to its vertex in this level.
	LiteralVertexMapping map[int]int
	// InverseLiteralVertexMapping maps a vertex in this level back to
	// the full set of literal vertices it represents.
	InverseLiteralVertexMapping map[int][]int

	NNodes int
	NEdges int

	ShortestPathLengths      *ShortestPathLengthStore
	UndominatedNeighborhood  *UndominatedNeighborhoodEdgeRankStore
}

// newGraphAbstraction pools g (the level below) and builds the
// abstraction level above it, carrying forward priorLiteralMapping (the
// level-below's LiteralVertexMapping, or the identity for the bottom
// level) to derive this level's LiteralVertexMapping directly.
func newGraphAbstraction(g *levelGraph, priorLiteralMapping map[int]int) *GraphAbstraction {
	vertexMapping := poolVertices(g)

	inverse := make(map[int][]int)
	for node, abstractNode := range vertexMapping {
		inverse[abstractNode] = append(inverse[abstractNode], node)
	}

	literalMapping := make(map[int]int, len(priorLiteralMapping))
	for node, priorAbstractNode := range priorLiteralMapping {
		literalMapping[node] = vertexMapping[priorAbstractNode]
	}

	inverseLiteral := make(map[int][]int)
	for node, abstractNode := range literalMapping {
		inverseLiteral[abstractNode] = append(inverseLiteral[abstractNode], node)
	}

	abstractGraph := newLevelGraph()
	for _, abstractNode := range vertexMapping {
		abstractGraph.addNode(abstractNode)
	}
	for _, e := range g.edges() {
		au, av := vertexMapping[e[0]], vertexMapping[e[1]]
		if au != av {
			abstractGraph.addEdge(au, av)
		}
	}

	return &GraphAbstraction{
		graph:                       abstractGraph,
		VertexMapping:               vertexMapping,
		InverseVertexMapping:        inverse,
		LiteralVertexMapping:        literalMapping,
		InverseLiteralVertexMapping: inverseLiteral,
		NNodes:                      len(abstractGraph.nodes),
		NEdges:                      len(abstractGraph.edges()),
		ShortestPathLengths:         newShortestPathLengthStore(),
		UndominatedNeighborhood:     newUndominatedNeighborhoodEdgeRankStore(),
	}
}

// PopulateShortestPathLengths populates this level's all-pairs
// shortest-path cache before finish, reporting whether it completed.
func (a *GraphAbstraction) PopulateShortestPathLengths(finish time.Time) bool {
	return a.ShortestPathLengths.populate(a.graph, finish)
}

// PopulateUndominatedNeighborhoodRanks populates this level's
// undominated-neighborhood edge-rank cache before finish, reporting
// whether it completed.
func (a *GraphAbstraction) PopulateUndominatedNeighborhoodRanks(finish time.Time) bool {
	return a.UndominatedNeighborhood.populate(a.graph, finish)
}

// InvertNode returns the literal vertices this level's node represents.
func (a *GraphAbstraction) InvertNode(node int) []int {
	return a.InverseLiteralVertexMapping[node]
}

// InvertNodes returns the vertices of the level below that this level's
// nodes represent (one level down, not all the way to the literal
// graph — see InvertNode for the literal-level inversion).
func (a *GraphAbstraction) InvertNodes(nodes []int) []int {
	var out []int
	for _, n := range nodes {
		out = append(out, a.InverseVertexMapping[n]...)
	}
	return out
}

// AbstractNode maps a literal vertex to its vertex in this level.
func (a *GraphAbstraction) AbstractNode(literal int) int {
	return a.LiteralVertexMapping[literal]
}

// AbstractNodes maps literal vertices to their vertices in this level.
func (a *GraphAbstraction) AbstractNodes(literals []int) []int {
	out := make([]int, len(literals))
	for i, l := range literals {
		out[i] = a.LiteralVertexMapping[l]
	}
	return out
}

// Neighbors returns the neighbors of node within this level's graph.
func (a *GraphAbstraction) Neighbors(node int) []int {
	return a.graph.neighbors(node)
}

// Nodes returns every vertex ID present in this level's graph.
func (a *GraphAbstraction) Nodes() []int {
	return append([]int(nil), a.graph.nodes...)
}
