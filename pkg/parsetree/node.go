// Package parsetree defines the concrete parse-tree node model: a labelled
// tree with token leaves and explicit epsilon leaves for empty productions.
package parsetree

import (
	"fmt"

	"cm/pkg/token"
)

// Kind distinguishes the three node shapes the parser ever produces.
type Kind int

const (
	Internal Kind = iota
	TokenLeaf
	Epsilon
)

// Node is either a labelled internal node with an ordered child list, a
// token leaf rendered "(KIND, lexeme)", or an epsilon leaf rendered
// "epsilon". A node is owned by its parent; nodes never share subtrees.
type Node struct {
	Kind     Kind
	Label    string // non-terminal name, for Internal nodes
	Tok      token.Token
	Children []*Node
}

// NewInternal returns an empty internal node for the given non-terminal.
func NewInternal(label string) *Node {
	return &Node{Kind: Internal, Label: label}
}

// NewTokenLeaf wraps a scanned token as a parse-tree leaf.
func NewTokenLeaf(tok token.Token) *Node {
	return &Node{Kind: TokenLeaf, Tok: tok}
}

// NewEpsilon returns an epsilon leaf marking an empty production.
func NewEpsilon() *Node {
	return &Node{Kind: Epsilon}
}

// Add appends a child, in order, to an internal node. A nil child (a
// production that failed to match during error recovery) is silently
// skipped rather than rendered.
func (n *Node) Add(child *Node) *Node {
	if child == nil {
		return n
	}
	n.Children = append(n.Children, child)
	return n
}

// Render returns the text a single node contributes to its own line.
func (n *Node) Render() string {
	switch n.Kind {
	case TokenLeaf:
		return fmt.Sprintf("(%s, %s)", n.Tok.Kind, n.Tok.Lexeme)
	case Epsilon:
		return "epsilon"
	default:
		return n.Label
	}
}

// Leaves walks the tree left to right and returns every token carried by a
// TokenLeaf, skipping epsilon leaves and internal nodes.
func (n *Node) Leaves() []token.Token {
	var out []token.Token
	var walk func(*Node)
	walk = func(cur *Node) {
		switch cur.Kind {
		case TokenLeaf:
			out = append(out, cur.Tok)
		case Internal:
			for _, c := range cur.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return out
}
