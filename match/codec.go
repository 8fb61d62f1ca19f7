package match

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/corvusgraph/pursuit/graph"
)

// nodeLinkDocument is the minimal subset of the networkx node-link JSON
// schema this module needs: a flat list of node IDs and a flat list of
// {source, target} edges.
type nodeLinkDocument struct {
	Nodes []struct {
		ID string `json:"id"`
	} `json:"nodes"`
	Links []struct {
		Source string `json:"source"`
		Target string `json:"target"`
	} `json:"links"`
}

// LoadNodeLink decodes a node-link JSON document (the format networkx's
// node_link_data produces) into a *graph.Graph. This is a thin,
// schema-less decode with nothing for a third-party library to add over
// encoding/json, so it stays on the standard library.
func LoadNodeLink(r io.Reader) (*graph.Graph, error) {
	var doc nodeLinkDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("match: decoding node-link JSON: %w", err)
	}

	g := graph.New()
	for _, n := range doc.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("match: adding node %q: %w", n.ID, err)
		}
	}
	for _, e := range doc.Links {
		if err := g.AddEdge(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("match: adding edge %s-%s: %w", e.Source, e.Target, err)
		}
	}
	return g, nil
}
