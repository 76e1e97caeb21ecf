// Package render defines the boundary to the external graph-rendering
// widget. The service computes what is visible; layout, hit-testing and
// drawing happen on the other side of this interface.
package render

import "github.com/kgview/kgview/pkg/common"

// Widget is the contract a rendering frontend exposes to the service.
type Widget interface {
	// SetNodes replaces the rendered node set.
	SetNodes(nodes []common.Node)
	// SetRelationships replaces the rendered edge set. Callers guarantee
	// that every endpoint id is present in the last SetNodes call.
	SetRelationships(rels []common.Relationship)
	// FitView adjusts the viewport to frame the given node ids; an empty
	// list frames the whole graph.
	FitView(nodeIDs []string)

	Zoom() float64
	SetZoom(level float64)

	// OnNodeClick registers the callback invoked with the clicked node id.
	OnNodeClick(fn func(id string))
	// OnRelationshipClick registers the callback invoked with the clicked
	// relationship id.
	OnRelationshipClick(fn func(id string))
}
