package grammar

import (
	"strings"
)

// Node is a node of an IBTL abstract syntax tree: a token and an ordered,
// possibly empty list of children.
//
// Leaves hold literals, identifiers or type keywords. Interior nodes hold an
// operator, statement or assignment token, with the operands as children in
// source order. The bindings of a let statement are grouped as nodes holding
// the '(' token, with the identifier and the type keyword as children.
type Node struct {
	Token    Token
	Children []*Node
}

// Program is the sequence of top-level forms of a translation unit, in
// source order.
type Program []*Node

// Leaf creates a node without children.
func Leaf(t Token) *Node {
	return &Node{Token: t}
}

// NewNode creates an interior node.
func NewNode(t Token, children ...*Node) *Node {
	return &Node{Token: t, Children: children}
}

// IsLeaf is a predicate: does the node have no children?
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Add appends a child node.
func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
}

// String returns the subtree as an s-expression. Minus operators are tagged
// with their arity class, "u-" for negation and "b-" for subtraction.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Token.Text)
		return
	}
	b.WriteByte('(')
	if n.Token.Text == "-" {
		switch n.Token.Kind {
		case UnaryOperator:
			b.WriteString("u")
		case BinaryOperator:
			b.WriteString("b")
		}
	}
	if n.Token.Kind != LeftParen {
		b.WriteString(n.Token.Text)
	}
	for i, ch := range n.Children {
		if i > 0 || n.Token.Kind != LeftParen {
			b.WriteByte(' ')
		}
		ch.write(b)
	}
	b.WriteByte(')')
}

func (p Program) String() string {
	forms := make([]string, len(p))
	for i, n := range p {
		forms[i] = n.String()
	}
	return strings.Join(forms, " ")
}
