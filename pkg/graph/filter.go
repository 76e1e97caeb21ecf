package graph

import (
	"strings"

	"github.com/kgview/kgview/pkg/common"
)

// FilterStatus distinguishes the reasons a filtered view can be empty, so
// callers can render "select a category" or "no matches" instead of a bare
// empty canvas.
type FilterStatus string

const (
	FilterStatusOK           FilterStatus = "ok"
	FilterStatusNoCategories FilterStatus = "no_categories"
	FilterStatusNoMatches    FilterStatus = "no_matches"
)

// FilterParams are the inputs of one filter pass. Nodes and Relationships
// must be the full canonical graph: the filter never narrows a previously
// filtered result, every call stands alone.
type FilterParams struct {
	Categories    []common.GraphType
	Nodes         []common.Node
	Relationships []common.Relationship
	Query         string
}

// Filter computes the visible subset of the canonical graph.
//
// With no active category the result is empty with
// FilterStatusNoCategories. Otherwise nodes survive when their category is
// active and, if Query is non-empty, when their caption or one of their
// searchable properties contains the query case-insensitively (the two
// criteria intersect). Relationships survive only when both endpoints do.
// A non-empty graph filtered down to nothing reports FilterStatusNoMatches.
func Filter(params FilterParams) ([]common.Node, []common.Relationship, FilterStatus) {
	nodes := make([]common.Node, 0, len(params.Nodes))
	rels := make([]common.Relationship, 0, len(params.Relationships))

	if len(params.Categories) == 0 {
		return nodes, rels, FilterStatusNoCategories
	}

	active := make(map[common.GraphType]bool, len(params.Categories))
	for _, c := range params.Categories {
		active[c] = true
	}

	query := strings.ToLower(strings.TrimSpace(params.Query))

	visible := make(map[string]bool, len(params.Nodes))
	for _, n := range params.Nodes {
		if !active[n.Category] {
			continue
		}
		if query != "" && !matchesQuery(n, query) {
			continue
		}
		nodes = append(nodes, n)
		visible[n.ID] = true
	}

	for _, r := range params.Relationships {
		if visible[r.From] && visible[r.To] {
			rels = append(rels, r)
		}
	}

	if len(nodes) == 0 && len(params.Nodes) > 0 {
		return nodes, rels, FilterStatusNoMatches
	}
	return nodes, rels, FilterStatusOK
}

// matchesQuery checks the caption and the category's caption-candidate
// properties. Limiting the searched properties keeps keystroke-rate calls
// cheap on large property bags.
func matchesQuery(n common.Node, query string) bool {
	if strings.Contains(strings.ToLower(n.Caption), query) {
		return true
	}
	for _, key := range captionProperties[n.Category] {
		if val, ok := n.Properties[key]; ok {
			if s, ok := val.(string); ok && strings.Contains(strings.ToLower(s), query) {
				return true
			}
		}
	}
	return false
}
