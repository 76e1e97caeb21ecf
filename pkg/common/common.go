package common

// GraphType is the coarse classification of a node, derived from its labels.
// It drives the filter toggles and the per-category display defaults.
type GraphType string

const (
	GraphTypeDocument  GraphType = "document"
	GraphTypeChunk     GraphType = "chunk"
	GraphTypeCommunity GraphType = "community"
	GraphTypeEntity    GraphType = "entity"
)

// GraphTypes lists every known category in precedence order. The order is
// load-bearing: classification resolves multi-label nodes by the first
// matching entry, and category listings are reported in this order.
var GraphTypes = []GraphType{
	GraphTypeDocument,
	GraphTypeChunk,
	GraphTypeCommunity,
	GraphTypeEntity,
}

// Scheme maps a label or relationship type to its assigned hex color.
// Within one session a scheme only ever gains keys; existing assignments
// are never remapped.
type Scheme map[string]string

// Clone returns an independent copy of the scheme. A nil scheme clones to
// an empty, non-nil scheme so callers can always add to the result.
func (s Scheme) Clone() Scheme {
	out := make(Scheme, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// RawNode is a node record as returned by a graph query service or a
// fixture generator, before normalization.
type RawNode struct {
	ID         string         `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

// RawRelationship is an edge record before normalization. From and To
// reference raw node ids and may dangle; the normalizer drops danglers.
type RawRelationship struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
}

// PrimaryLabel returns the first label, or "" for an unlabeled record.
func (n RawNode) PrimaryLabel() string {
	if len(n.Labels) == 0 {
		return ""
	}
	return n.Labels[0]
}

// Node is a normalized, display-ready graph node. Exactly one Node exists
// per id in a canonical graph.
type Node struct {
	ID         string         `json:"id"`
	Labels     []string       `json:"labels"`
	Category   GraphType      `json:"category"`
	Caption    string         `json:"caption"`
	Color      string         `json:"color"`
	Icon       string         `json:"icon,omitempty"`
	Size       int            `json:"size,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// PrimaryLabel returns the first label, or "" for an unlabeled node.
func (n Node) PrimaryLabel() string {
	if len(n.Labels) == 0 {
		return ""
	}
	return n.Labels[0]
}

// Relationship is a normalized edge. Both endpoints are guaranteed to be
// present in the node set of the same canonical graph.
type Relationship struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color,omitempty"`
}
