package mods

import (
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/types"
	"github.com/stretchr/testify/assert"
)

func flatten(nodes []*TreeNode) []string {
	var out []string
	Walk(nodes, func(node *TreeNode, depth int) {
		prefix := ""
		for i := 0; i < depth; i++ {
			prefix += "  "
		}
		out = append(out, prefix+node.Name)
	})
	return out
}

func TestTree(t *testing.T) {
	tests := []struct {
		name    string
		records []types.ModRecord
		want    []string
	}{
		{
			name:    "empty",
			records: nil,
			want:    nil,
		},
		{
			name: "grouped under first installed dependency",
			records: []types.ModRecord{
				{Name: "Base"},
				{Name: "Music"},
				{Name: "Addon", Dependencies: []string{"Missing", "Base", "Music"}},
				{Name: "Patch", Dependencies: []string{"Addon"}},
			},
			want: []string{"Base", "  Addon", "    Patch", "Music"},
		},
		{
			name: "reserved mod is hidden and not a parent",
			records: []types.ModRecord{
				{Name: types.ReservedModName},
				{Name: "Foo", Dependencies: []string{types.ReservedModName}},
			},
			want: []string{"Foo"},
		},
		{
			name: "parent loop is broken at smallest name",
			records: []types.ModRecord{
				{Name: "X", Dependencies: []string{"Y"}},
				{Name: "Y", Dependencies: []string{"X"}},
			},
			want: []string{"X", "  Y"},
		},
		{
			name: "self dependency is ignored",
			records: []types.ModRecord{
				{Name: "Solo", Dependencies: []string{"Solo"}},
			},
			want: []string{"Solo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewSnapshot("/game/mod", tt.records...)
			assert.Equal(t, tt.want, flatten(snap.Tree()))
		})
	}
}
