package graph

import (
	"strings"

	"github.com/kgview/kgview/pkg/common"
)

// captionProperties lists, per category, the properties tried in order when
// deriving a node caption. The first non-empty string wins; nodes without
// any candidate fall back to their truncated id.
var captionProperties = map[common.GraphType][]string{
	common.GraphTypeDocument:  {"fileName", "name", "title"},
	common.GraphTypeChunk:     {"text", "fileName"},
	common.GraphTypeCommunity: {"title", "name"},
	common.GraphTypeEntity:    {"name", "title", "description"},
}

// Display defaults handed to the rendering widget. Documents anchor the
// layout visually, chunks stay small so they read as provenance.
var (
	categorySizes = map[common.GraphType]int{
		common.GraphTypeDocument:  9,
		common.GraphTypeCommunity: 8,
		common.GraphTypeEntity:    7,
		common.GraphTypeChunk:     5,
	}
	categoryIcons = map[common.GraphType]string{
		common.GraphTypeDocument:  "file-text",
		common.GraphTypeChunk:     "align-left",
		common.GraphTypeCommunity: "users",
		common.GraphTypeEntity:    "circle",
	}
)

const captionMaxRunes = 24

// Result is the output of one normalization pass: the canonical graph plus
// the scheme as extended by the pass. Skipped counters report malformed
// input records so callers can log them; malformed records are dropped,
// never turned into errors.
type Result struct {
	Nodes                []common.Node
	Relationships        []common.Relationship
	Scheme               common.Scheme
	SkippedNodes         int
	SkippedRelationships int
}

// Normalize converts raw query results into a canonical graph.
//
// Nodes are deduplicated by id: the first occurrence fixes position and
// identity, later occurrences merge their properties in with later values
// winning on overlapping keys. Every node gets a category, a caption, a
// color threaded through the given scheme, and size/icon hints.
// Relationships are deduplicated by id (first record wins) and dropped when
// either endpoint is missing from the deduplicated node set. Records
// without an id, or relationships without type or endpoints, are counted
// and skipped.
func Normalize(rawNodes []common.RawNode, rawRels []common.RawRelationship, scheme common.Scheme) Result {
	res := Result{Scheme: scheme.Clone()}

	order := make([]string, 0, len(rawNodes))
	merged := make(map[string]common.RawNode, len(rawNodes))

	for _, raw := range rawNodes {
		if raw.ID == "" {
			res.SkippedNodes++
			continue
		}

		existing, ok := merged[raw.ID]
		if !ok {
			order = append(order, raw.ID)
			merged[raw.ID] = common.RawNode{
				ID:         raw.ID,
				Labels:     raw.Labels,
				Properties: cloneProperties(raw.Properties),
			}
			continue
		}

		if len(existing.Properties) == 0 {
			existing.Properties = make(map[string]any, len(raw.Properties))
		}
		for k, v := range raw.Properties {
			existing.Properties[k] = v
		}
		if len(existing.Labels) == 0 {
			existing.Labels = raw.Labels
		}
		merged[raw.ID] = existing
	}

	res.Nodes = make([]common.Node, 0, len(order))
	present := make(map[string]bool, len(order))

	for _, id := range order {
		raw := merged[id]
		category := ClassifyLabels(raw.Labels)

		label := raw.PrimaryLabel()
		if label == "" {
			label = string(category)
		}

		var color string
		color, res.Scheme = AssignColor(label, res.Scheme)

		res.Nodes = append(res.Nodes, common.Node{
			ID:         raw.ID,
			Labels:     raw.Labels,
			Category:   category,
			Caption:    deriveCaption(raw, category),
			Color:      color,
			Icon:       categoryIcons[category],
			Size:       categorySizes[category],
			Properties: raw.Properties,
		})
		present[raw.ID] = true
	}

	res.Relationships = make([]common.Relationship, 0, len(rawRels))
	seenRels := make(map[string]bool, len(rawRels))

	for _, raw := range rawRels {
		if raw.ID == "" || raw.Type == "" || raw.From == "" || raw.To == "" {
			res.SkippedRelationships++
			continue
		}
		if seenRels[raw.ID] {
			continue
		}
		seenRels[raw.ID] = true

		if !present[raw.From] || !present[raw.To] {
			res.SkippedRelationships++
			continue
		}

		var color string
		color, res.Scheme = AssignColor(raw.Type, res.Scheme)

		res.Relationships = append(res.Relationships, common.Relationship{
			ID:    raw.ID,
			Type:  raw.Type,
			From:  raw.From,
			To:    raw.To,
			Color: color,
		})
	}

	return res
}

func deriveCaption(raw common.RawNode, category common.GraphType) string {
	for _, key := range captionProperties[category] {
		if val, ok := raw.Properties[key]; ok {
			if s, ok := val.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return truncateCaption(trimmed)
				}
			}
		}
	}
	return truncateCaption(raw.ID)
}

func truncateCaption(s string) string {
	runes := []rune(s)
	if len(runes) <= captionMaxRunes {
		return s
	}
	return string(runes[:captionMaxRunes]) + "…"
}

func cloneProperties(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
