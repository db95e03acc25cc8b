package mods

import (
	"sort"

	"github.com/arthur-debert/modlauncher/pkg/types"
)

// TreeNode groups a mod with the mods listed under it.
type TreeNode struct {
	Name     string
	Children []*TreeNode
}

// Tree groups every visible mod under its first installed dependency.
// Mods without an installed dependency are roots. When parents form a loop,
// the lexicographically smallest mod of the loop becomes a root.
func (s *Snapshot) Tree() []*TreeNode {
	names := s.Names()
	visible := make(map[string]bool, len(names))
	for _, name := range names {
		visible[name] = true
	}

	parent := make(map[string]string, len(names))
	for _, name := range names {
		for _, dep := range s.Dependencies[name] {
			if dep != name && visible[dep] {
				parent[name] = dep
				break
			}
		}
	}

	for _, name := range names {
		if loop := parentLoop(parent, name); len(loop) > 0 {
			sort.Strings(loop)
			delete(parent, loop[0])
		}
	}

	nodes := make(map[string]*TreeNode, len(names))
	for _, name := range names {
		nodes[name] = &TreeNode{Name: name}
	}

	var roots []*TreeNode
	for _, name := range names {
		if p, ok := parent[name]; ok {
			nodes[p].Children = append(nodes[p].Children, nodes[name])
			continue
		}
		roots = append(roots, nodes[name])
	}
	return roots
}

// parentLoop returns the members of the parent loop that start contains, if any.
func parentLoop(parent map[string]string, start string) []string {
	seen := map[string]bool{start: true}
	path := []string{start}
	cur := start
	for {
		next, ok := parent[cur]
		if !ok {
			return nil
		}
		if next == start {
			return path
		}
		if seen[next] {
			// loop that does not contain start; handled when visiting its members
			return nil
		}
		seen[next] = true
		path = append(path, next)
		cur = next
	}
}

// Walk visits nodes depth first, passing the nesting depth.
func Walk(nodes []*TreeNode, fn func(node *TreeNode, depth int)) {
	var walk func([]*TreeNode, int)
	walk = func(ns []*TreeNode, depth int) {
		for _, n := range ns {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(nodes, 0)
}

// Reserved returns the reserved merge-output mod record, if installed.
func (s *Snapshot) Reserved() (types.ModRecord, bool) {
	return s.Lookup(types.ReservedModName)
}
