package graph

import (
	"fmt"
	"testing"

	"github.com/kgview/kgview/pkg/common"
)

func TestExtractSchema(t *testing.T) {
	res := Normalize([]common.RawNode{
		{ID: "1", Labels: []string{"Document"}, Properties: map[string]any{"fileName": "a.pdf"}},
		{ID: "2", Labels: []string{"Chunk"}},
		{ID: "3", Labels: []string{"Chunk"}},
		{ID: "4", Labels: []string{"Person"}, Properties: map[string]any{"name": "Ada"}},
		{ID: "5", Labels: []string{"Person"}, Properties: map[string]any{"name": "Charles"}},
	}, []common.RawRelationship{
		{ID: "r1", Type: "HAS_CHUNK", From: "1", To: "2"},
		{ID: "r2", Type: "HAS_CHUNK", From: "1", To: "3"},
		{ID: "r3", Type: "MENTIONS", From: "2", To: "4"},
		{ID: "r4", Type: "KNOWS", From: "4", To: "5"},
	}, common.Scheme{})

	schemaNodes, schemaRels := ExtractSchema(res.Nodes, res.Relationships)

	if len(schemaNodes) != 3 {
		t.Fatalf("got %d schema nodes, want 3", len(schemaNodes))
	}
	if len(schemaRels) != 3 {
		t.Fatalf("got %d schema relationships, want 3", len(schemaRels))
	}

	// Representatives keep the data nodes' colors.
	colorByLabel := make(map[string]string)
	for _, n := range res.Nodes {
		if _, ok := colorByLabel[n.PrimaryLabel()]; !ok {
			colorByLabel[n.PrimaryLabel()] = n.Color
		}
	}
	for _, sn := range schemaNodes {
		if sn.Color != colorByLabel[sn.ID] {
			t.Errorf("schema node %q color = %q, want %q", sn.ID, sn.Color, colorByLabel[sn.ID])
		}
	}

	// HAS_CHUNK collapses to a single Document->Chunk schema edge.
	for _, sr := range schemaRels {
		if sr.Type == "HAS_CHUNK" {
			if sr.From != "Document" || sr.To != "Chunk" {
				t.Errorf("HAS_CHUNK schema edge %s -> %s, want Document -> Chunk", sr.From, sr.To)
			}
		}
	}
}

func TestExtractSchemaSizeBound(t *testing.T) {
	labels := []string{"Document", "Chunk", "Person", "Organization", "Location"}

	rawNodes := make([]common.RawNode, 0, 1000)
	for i := 0; i < 1000; i++ {
		rawNodes = append(rawNodes, common.RawNode{
			ID:     fmt.Sprintf("n%d", i),
			Labels: []string{labels[i%len(labels)]},
		})
	}
	rawRels := make([]common.RawRelationship, 0, 999)
	for i := 1; i < 1000; i++ {
		rawRels = append(rawRels, common.RawRelationship{
			ID:   fmt.Sprintf("r%d", i),
			Type: "RELATED",
			From: fmt.Sprintf("n%d", i-1),
			To:   fmt.Sprintf("n%d", i),
		})
	}

	res := Normalize(rawNodes, rawRels, common.Scheme{})
	schemaNodes, schemaRels := ExtractSchema(res.Nodes, res.Relationships)

	if len(schemaNodes) > len(labels) {
		t.Errorf("schema has %d nodes for %d labels", len(schemaNodes), len(labels))
	}
	if len(schemaRels) > 1 {
		t.Errorf("schema has %d relationships for 1 type", len(schemaRels))
	}
}

func TestExtractSchemaStableRepresentative(t *testing.T) {
	res := Normalize([]common.RawNode{
		{ID: "p1", Labels: []string{"Person"}, Properties: map[string]any{"name": "Ada"}},
		{ID: "p2", Labels: []string{"Person"}, Properties: map[string]any{"name": "Charles"}},
	}, nil, common.Scheme{})

	first, _ := ExtractSchema(res.Nodes, res.Relationships)
	second, _ := ExtractSchema(res.Nodes, res.Relationships)

	if first[0].Caption != second[0].Caption || first[0].Color != second[0].Color {
		t.Errorf("representative changed between identical calls")
	}
}

func TestExtractSchemaEmpty(t *testing.T) {
	schemaNodes, schemaRels := ExtractSchema(nil, nil)
	if len(schemaNodes) != 0 || len(schemaRels) != 0 {
		t.Errorf("empty graph produced schema %v / %v", schemaNodes, schemaRels)
	}
}
