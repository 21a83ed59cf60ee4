package engine

import (
	"fmt"
	"io"
	"strings"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// TreeNode records the explored game tree for inspection.
// Every method accepts a nil receiver, so a search without a tree pays nothing.
type TreeNode struct {
	Move       *Move
	Window     Window
	Pruned     bool
	Comment    string
	Attributes map[string]int
	Children   []*TreeNode
}

func NewTreeNode(m *Move) *TreeNode {
	return &TreeNode{Move: m, Window: FullWindow()}
}

func (n *TreeNode) AddChild(m *Move, w Window) *TreeNode {
	if n == nil {
		return nil
	}
	var child = &TreeNode{Move: m, Window: w}
	n.Children = append(n.Children, child)
	return child
}

// AddPrunedChildren records moves that were cut off and never expanded.
func (n *TreeNode) AddPrunedChildren(ml MoveList, w Window, comment string) {
	if n == nil {
		return
	}
	for _, m := range ml {
		n.Children = append(n.Children, &TreeNode{
			Move:    m,
			Window:  w,
			Pruned:  true,
			Comment: comment,
		})
	}
}

func (n *TreeNode) SetComment(comment string) {
	if n != nil {
		n.Comment = comment
	}
}

func (n *TreeNode) SetAttribute(name string, value int) {
	if n == nil {
		return
	}
	if n.Attributes == nil {
		n.Attributes = make(map[string]int)
	}
	n.Attributes[name] = value
}

// Walk visits the tree depth first.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int)) {
	n.walk(fn, 0)
}

func (n *TreeNode) walk(fn func(node *TreeNode, depth int), depth int) {
	if n == nil {
		return
	}
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

func (n *TreeNode) Size() int {
	var size int
	n.Walk(func(*TreeNode, int) { size++ })
	return size
}

func (n *TreeNode) Print(w io.Writer) {
	n.Walk(func(node *TreeNode, depth int) {
		var sb = &strings.Builder{}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(node.Move.String())
		if node.Move != nil {
			fmt.Fprintf(sb, " value %d inherited %d", node.Move.Value, node.Move.InheritedValue)
		}
		fmt.Fprintf(sb, " %v", node.Window)
		if node.Pruned {
			sb.WriteString(" pruned")
		}
		if node.Comment != "" {
			fmt.Fprintf(sb, " (%s)", node.Comment)
		}
		for name, value := range node.Attributes {
			fmt.Fprintf(sb, " %s=%d", name, value)
		}
		fmt.Fprintln(w, sb.String())
	})
}
