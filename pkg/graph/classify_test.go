package graph

import (
	"reflect"
	"testing"

	"github.com/kgview/kgview/pkg/common"
)

func TestClassifyLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   common.GraphType
	}{
		{
			name:   "document",
			labels: []string{"Document"},
			want:   common.GraphTypeDocument,
		},
		{
			name:   "chunk",
			labels: []string{"Chunk"},
			want:   common.GraphTypeChunk,
		},
		{
			name:   "community",
			labels: []string{"__Community__"},
			want:   common.GraphTypeCommunity,
		},
		{
			name:   "custom label is entity",
			labels: []string{"Person"},
			want:   common.GraphTypeEntity,
		},
		{
			name:   "document beats custom label regardless of order",
			labels: []string{"Person", "Document"},
			want:   common.GraphTypeDocument,
		},
		{
			name:   "document beats chunk",
			labels: []string{"Chunk", "Document"},
			want:   common.GraphTypeDocument,
		},
		{
			name:   "chunk beats community",
			labels: []string{"__Community__", "Chunk"},
			want:   common.GraphTypeChunk,
		},
		{
			name:   "no labels is entity",
			labels: nil,
			want:   common.GraphTypeEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLabels(tt.labels)
			if got != tt.want {
				t.Errorf("ClassifyLabels(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	nodes := []common.Node{
		{ID: "e1", Labels: []string{"Person"}},
		{ID: "c1", Labels: []string{"Chunk"}},
		{ID: "d1", Labels: []string{"Document"}},
		{ID: "e2", Labels: []string{"Organization"}},
	}

	want := []common.GraphType{
		common.GraphTypeDocument,
		common.GraphTypeChunk,
		common.GraphTypeEntity,
	}

	got := Categories(nodes)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}

	// Order independence: reversing the input must not change the result.
	reversed := make([]common.Node, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		reversed = append(reversed, nodes[i])
	}
	if got := Categories(reversed); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories(reversed) = %v, want %v", got, want)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	got := Categories(nil)
	if len(got) != 0 {
		t.Errorf("Categories(nil) = %v, want empty", got)
	}
}
