// Package fixture provides a deterministic sample graph for demo sessions
// and tests. The sample deliberately contains duplicated node records and a
// dangling relationship so the load path exercises the normalizer's
// dedupe and integrity handling end to end.
package fixture

import "github.com/kgview/kgview/pkg/common"

// SampleGraph returns the raw records of the built-in demo graph: two
// documents split into chunks, the entities mentioned in them (with one
// entity returned twice by "different queries"), and their relationships.
func SampleGraph() ([]common.RawNode, []common.RawRelationship) {
	nodes := []common.RawNode{
		{ID: "doc-1", Labels: []string{"Document"}, Properties: map[string]any{
			"fileName": "annual-report-2023.pdf",
			"fileSize": "482931",
		}},
		{ID: "doc-2", Labels: []string{"Document"}, Properties: map[string]any{
			"fileName": "press-release.txt",
		}},

		{ID: "chunk-1", Labels: []string{"Chunk"}, Properties: map[string]any{
			"text": "Acme Corp reported record revenue under CEO Jane Miller.",
		}},
		{ID: "chunk-2", Labels: []string{"Chunk"}, Properties: map[string]any{
			"text": "The Hamburg plant expanded its battery production line.",
		}},
		{ID: "chunk-3", Labels: []string{"Chunk"}, Properties: map[string]any{
			"text": "Acme Corp announced a partnership with Voltstream GmbH.",
		}},

		{ID: "ent-acme", Labels: []string{"Organization"}, Properties: map[string]any{
			"name": "Acme Corp",
		}},
		// Same entity surfaced by a second query scope with extra detail.
		{ID: "ent-acme", Labels: []string{"Organization"}, Properties: map[string]any{
			"description": "Industrial manufacturer headquartered in Hamburg.",
		}},
		{ID: "ent-miller", Labels: []string{"Person"}, Properties: map[string]any{
			"name": "Jane Miller",
		}},
		{ID: "ent-hamburg", Labels: []string{"Location"}, Properties: map[string]any{
			"name": "Hamburg",
		}},
		{ID: "ent-voltstream", Labels: []string{"Organization"}, Properties: map[string]any{
			"name": "Voltstream GmbH",
		}},

		{ID: "comm-1", Labels: []string{"__Community__"}, Properties: map[string]any{
			"title": "Manufacturing cluster",
		}},
	}

	relationships := []common.RawRelationship{
		{ID: "rel-1", Type: "HAS_CHUNK", From: "doc-1", To: "chunk-1"},
		{ID: "rel-2", Type: "HAS_CHUNK", From: "doc-1", To: "chunk-2"},
		{ID: "rel-3", Type: "HAS_CHUNK", From: "doc-2", To: "chunk-3"},
		{ID: "rel-4", Type: "MENTIONS", From: "chunk-1", To: "ent-acme"},
		{ID: "rel-5", Type: "MENTIONS", From: "chunk-1", To: "ent-miller"},
		{ID: "rel-6", Type: "MENTIONS", From: "chunk-2", To: "ent-hamburg"},
		{ID: "rel-7", Type: "MENTIONS", From: "chunk-3", To: "ent-voltstream"},
		{ID: "rel-8", Type: "CEO_OF", From: "ent-miller", To: "ent-acme"},
		{ID: "rel-9", Type: "LOCATED_IN", From: "ent-acme", To: "ent-hamburg"},
		{ID: "rel-10", Type: "PARTNER_OF", From: "ent-acme", To: "ent-voltstream"},
		{ID: "rel-11", Type: "IN_COMMUNITY", From: "ent-acme", To: "comm-1"},
		// References a node that no query returned; the normalizer drops it.
		{ID: "rel-12", Type: "MENTIONS", From: "chunk-2", To: "ent-unknown"},
	}

	return nodes, relationships
}
