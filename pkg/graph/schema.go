package graph

import "github.com/kgview/kgview/pkg/common"

// ExtractSchema reduces a graph to its structure: one representative node
// per distinct primary label and one representative relationship per
// distinct relationship type. Representatives are the first encountered in
// input order, so repeated calls over the same graph are stable. Schema
// relationships are rewired to the representative nodes of their original
// endpoints' labels; a type whose endpoint labels are not both represented
// is dropped. Output size is bounded by the number of distinct labels and
// types, never by the instance graph size.
func ExtractSchema(nodes []common.Node, rels []common.Relationship) ([]common.Node, []common.Relationship) {
	repByLabel := make(map[string]common.Node)
	labelOrder := make([]string, 0)
	labelByID := make(map[string]string, len(nodes))

	for _, n := range nodes {
		label := n.PrimaryLabel()
		if label == "" {
			label = string(n.Category)
		}
		labelByID[n.ID] = label

		if _, ok := repByLabel[label]; ok {
			continue
		}
		labelOrder = append(labelOrder, label)
		repByLabel[label] = common.Node{
			ID:       label,
			Labels:   []string{label},
			Category: n.Category,
			Caption:  label,
			Color:    n.Color,
			Icon:     n.Icon,
			Size:     n.Size,
		}
	}

	schemaNodes := make([]common.Node, 0, len(labelOrder))
	for _, label := range labelOrder {
		schemaNodes = append(schemaNodes, repByLabel[label])
	}

	schemaRels := make([]common.Relationship, 0)
	seenTypes := make(map[string]bool)

	for _, r := range rels {
		if seenTypes[r.Type] {
			continue
		}
		fromLabel, okF := labelByID[r.From]
		toLabel, okT := labelByID[r.To]
		if !okF || !okT {
			continue
		}
		if _, ok := repByLabel[fromLabel]; !ok {
			continue
		}
		if _, ok := repByLabel[toLabel]; !ok {
			continue
		}

		seenTypes[r.Type] = true
		schemaRels = append(schemaRels, common.Relationship{
			ID:    r.Type,
			Type:  r.Type,
			From:  fromLabel,
			To:    toLabel,
			Color: r.Color,
		})
	}

	return schemaNodes, schemaRels
}
