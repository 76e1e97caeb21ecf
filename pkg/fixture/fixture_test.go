package fixture

import (
	"testing"

	"github.com/kgview/kgview/pkg/common"
	"github.com/kgview/kgview/pkg/graph"
)

func TestSampleGraphNormalizes(t *testing.T) {
	rawNodes, rawRels := SampleGraph()

	res := graph.Normalize(rawNodes, rawRels, common.Scheme{})

	// The duplicated entity collapses to one node.
	if len(res.Nodes) != len(rawNodes)-1 {
		t.Errorf("got %d nodes, want %d", len(res.Nodes), len(rawNodes)-1)
	}

	// The deliberately dangling relationship is the only drop.
	if res.SkippedRelationships != 1 {
		t.Errorf("SkippedRelationships = %d, want 1", res.SkippedRelationships)
	}
	if res.SkippedNodes != 0 {
		t.Errorf("SkippedNodes = %d, want 0", res.SkippedNodes)
	}

	// The duplicate record's properties merge into the entity.
	for _, n := range res.Nodes {
		if n.ID == "ent-acme" {
			if n.Properties["name"] != "Acme Corp" {
				t.Errorf("merged entity lost name: %v", n.Properties)
			}
			if n.Properties["description"] == nil {
				t.Errorf("merged entity lost description: %v", n.Properties)
			}
		}
	}

	// Every category toggle should be enabled for the sample.
	for gt, present := range graph.Conditions(res.Nodes) {
		if !present {
			t.Errorf("sample graph missing category %v", gt)
		}
	}
}
