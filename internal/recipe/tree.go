// Package recipe reconstructs an item's build tree from the flat
// component name references in the dataset.
package recipe

import (
	"github.com/YungSonix/Smite2Mastery-sub002/internal/lookup"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// Node is one item in a recipe tree.
type Node struct {
	Item     models.Item `json:"item"`
	Children []Node      `json:"children,omitempty"`
}

// Tree is a built recipe rooted at the selected item. Declared counts
// every name reference the build walked; Resolved counts the ones the
// resolver found. The difference is surfaced to the user instead of
// failing the tree.
type Tree struct {
	Root     Node `json:"root"`
	Declared int  `json:"declared"`
	Resolved int  `json:"resolved"`
}

// Discrepancy is the number of name references that resolved to
// nothing. Zero for a complete tree.
func (t Tree) Discrepancy() int {
	return t.Declared - t.Resolved
}

// HasRecipe reports whether the tree carries a component section.
// Only tier 2 and tier 3 items with declared components do.
func (t Tree) HasRecipe() bool {
	return len(t.Root.Children) > 0
}

// Builder builds recipe trees against a fixed resolver. Selecting any
// node of a built tree and calling Build on its item re-roots the
// drill-down; there is no depth limit across successive selections.
type Builder struct {
	resolver *lookup.Resolver
}

// NewBuilder creates a builder over the given resolver.
func NewBuilder(resolver *lookup.Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build constructs the recipe tree for an item.
//
// Items outside tiers 2 and 3, or without components, yield a bare
// root. A tier-2 recipe shows its resolved components as leaves and
// never expands them further. A tier-3 recipe shows its components
// as children; a child contributes grandchildren only when it
// declares buildsFromT1, and those grandchildren come exclusively
// from that list — never from the child's own components, which may
// reference non-tier-1 intermediates. Unresolved references are
// dropped and counted, never fatal.
func (b *Builder) Build(item models.Item) Tree {
	tree := Tree{Root: Node{Item: item}}
	if item.Tier == nil || (*item.Tier != 2 && *item.Tier != 3) {
		return tree
	}
	if len(item.Components) == 0 {
		return tree
	}

	expandGrandchildren := *item.Tier == 3
	for _, name := range item.Components {
		tree.Declared++
		component, ok := b.resolver.Resolve(name)
		if !ok {
			continue
		}
		tree.Resolved++

		child := Node{Item: component}
		if expandGrandchildren {
			for _, t1 := range component.BuildsFromT1 {
				tree.Declared++
				leaf, ok := b.resolver.Resolve(t1)
				if !ok {
					continue
				}
				tree.Resolved++
				child.Children = append(child.Children, Node{Item: leaf})
			}
		}
		tree.Root.Children = append(tree.Root.Children, child)
	}
	return tree
}
