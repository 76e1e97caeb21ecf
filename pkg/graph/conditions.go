package graph

import "github.com/kgview/kgview/pkg/common"

// Conditions reports, for every known category, whether the node set
// contains at least one node of that category. The UI uses it to disable
// toggles for absent categories; the map always carries every entry of
// common.GraphTypes so callers need no existence checks.
func Conditions(nodes []common.Node) map[common.GraphType]bool {
	out := make(map[common.GraphType]bool, len(common.GraphTypes))
	for _, gt := range common.GraphTypes {
		out[gt] = false
	}
	for _, n := range nodes {
		out[ClassifyLabels(n.Labels)] = true
	}
	return out
}
