package display

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/astypes/as"
	"github.com/teranos/astypes/conversion"
	"github.com/teranos/astypes/typemap"
)

const maxValueWidth = 60

// NodeTree builds a tree of tm: one branch per set property, nested nodes
// expanded below the property that holds them, unmapped properties last.
func NodeTree(tm *typemap.TypeMap) (pterm.TreeNode, error) {
	root := pterm.TreeNode{Text: nodeLabel(tm)}

	if own := tm.OwnContext(); !own.IsEmpty() {
		root.Children = append(root.Children, pterm.TreeNode{
			Text: fmt.Sprintf("@context (%d entries)", own.Len()),
		})
	}

	props, err := conversion.Properties(tm)
	if err != nil {
		return pterm.TreeNode{}, err
	}
	for _, p := range props {
		child := pterm.TreeNode{Text: fmt.Sprintf("%s [%s]", p.Name, p.Facet)}
		if len(p.Nodes) == 0 {
			child.Text += " = " + truncate(fmt.Sprint(p.Value))
		}
		for _, n := range p.Nodes {
			sub, err := NodeTree(n)
			if err != nil {
				return pterm.TreeNode{}, err
			}
			child.Children = append(child.Children, sub)
		}
		root.Children = append(root.Children, child)
	}

	if tm.HasUnmapped() {
		root.Children = append(root.Children, pterm.TreeNode{
			Text: "unmapped: " + strings.Join(tm.Unmapped().Keys(), ", "),
		})
	}
	return root, nil
}

// RenderTree returns NodeTree(tm) drawn with pterm.
func RenderTree(tm *typemap.TypeMap) (string, error) {
	root, err := NodeTree(tm)
	if err != nil {
		return "", err
	}
	return pterm.DefaultTree.WithRoot(pterm.TreeNode{Children: []pterm.TreeNode{root}}).Srender()
}

func nodeLabel(tm *typemap.TypeMap) string {
	label := strings.Join(tm.Types(), ", ")
	if label == "" {
		label = "(untyped)"
	}
	if id := as.ID(tm); id != "" {
		label += " " + id
	}
	return label
}

func truncate(s string) string {
	if len(s) <= maxValueWidth {
		return s
	}
	return s[:maxValueWidth-3] + "..."
}
