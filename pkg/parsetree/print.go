package parsetree

import (
	"io"
	"strings"
)

// Render depth-first renders the tree into one line per node, using the
// box-drawing connectors: "├── " for a non-last child and
// "└── " for the last, with grandchildren of a non-last child indented
// "│   " and grandchildren of a last child indented four spaces. The root
// has no connector.
func Render(root *Node) []string {
	var lines []string
	lines = append(lines, root.Render())
	renderChildren(root, "", &lines)
	return lines
}

func renderChildren(n *Node, prefix string, lines *[]string) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		*lines = append(*lines, prefix+connector+child.Render())
		renderChildren(child, childPrefix, lines)
	}
}

// Write renders the tree and writes it to w, one node per line.
func Write(w io.Writer, root *Node) error {
	lines := Render(root)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
