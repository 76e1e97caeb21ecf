package graph

import "github.com/kgview/kgview/pkg/common"

// palette is the fixed color pool for label and relationship-type
// assignment. Ordering matters: colors are handed out by insertion
// position, so the palette must never be reordered between releases or
// stored schemes would stop matching fresh assignments.
var palette = []string{
	"#588c7e",
	"#f2e394",
	"#f2ae72",
	"#d96459",
	"#5b9aa0",
	"#d6d4e0",
	"#b8a9c9",
	"#622569",
	"#96ceb4",
	"#ffeead",
	"#ff6f69",
	"#ffcc5c",
	"#88d8b0",
	"#e06377",
	"#c83349",
	"#f9d5e5",
	"#80ced6",
	"#618685",
	"#fefbd8",
	"#36486b",
}

// AssignColor returns the color for label, assigning one when the label is
// new. The input scheme is never mutated: a known label returns the scheme
// unchanged, a new label returns a copy with the assignment added. New
// labels take the palette slot at the current scheme size, wrapping around
// once the palette is exhausted, so assignment never fails and replaying
// the same label sequence always yields the same colors.
func AssignColor(label string, scheme common.Scheme) (string, common.Scheme) {
	if color, ok := scheme[label]; ok {
		return color, scheme
	}

	color := palette[len(scheme)%len(palette)]
	updated := scheme.Clone()
	updated[label] = color
	return color, updated
}

// PaletteSize reports how many distinct colors exist before reuse begins.
func PaletteSize() int {
	return len(palette)
}
