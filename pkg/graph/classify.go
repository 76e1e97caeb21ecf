package graph

import "github.com/kgview/kgview/pkg/common"

// Well-known labels produced by the ingestion pipeline. Anything else is
// treated as an extracted entity type.
const (
	LabelDocument  = "Document"
	LabelChunk     = "Chunk"
	LabelCommunity = "__Community__"
)

// ClassifyLabels resolves a node's label list to a single category.
// When a node carries several labels the well-known ones win in the fixed
// precedence order Document > Chunk > Community; any remaining label makes
// the node an entity. Unlabeled nodes also classify as entities so they
// stay reachable through the entity toggle.
func ClassifyLabels(labels []string) common.GraphType {
	has := func(want string) bool {
		for _, l := range labels {
			if l == want {
				return true
			}
		}
		return false
	}

	switch {
	case has(LabelDocument):
		return common.GraphTypeDocument
	case has(LabelChunk):
		return common.GraphTypeChunk
	case has(LabelCommunity):
		return common.GraphTypeCommunity
	default:
		return common.GraphTypeEntity
	}
}

// Categories returns the distinct categories present in the node set, in
// precedence order. The result does not depend on the input ordering.
// An empty node set yields an empty (non-nil) slice.
func Categories(nodes []common.Node) []common.GraphType {
	seen := make(map[common.GraphType]bool, len(common.GraphTypes))
	for _, n := range nodes {
		seen[ClassifyLabels(n.Labels)] = true
	}

	out := make([]common.GraphType, 0, len(seen))
	for _, gt := range common.GraphTypes {
		if seen[gt] {
			out = append(out, gt)
		}
	}
	return out
}
