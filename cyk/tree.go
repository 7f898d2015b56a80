package cyk

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/quenbyako/cykparse/grammar"
)

var (
	ErrNotAccepted = errors.New("input is not accepted")
	// ErrMissingBackpointer means the table and its backpointers disagree.
	// It never happens unless the parser itself is broken.
	ErrMissingBackpointer = errors.New("missing backpointer")
)

// Node is a parse tree node. Leaves have no children.
type Node struct {
	Label    string
	Children []*Node
}

func leaf(label string) *Node { return &Node{Label: label} }

// Bracketed renders the tree as (Label child child ...), a leaf is its bare
// label.
func (n *Node) Bracketed() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) String() string { return n.Bracketed() }

func (n *Node) writeTo(b *strings.Builder) {
	if len(n.Children) == 0 {
		b.WriteString(n.Label)
		return
	}

	b.WriteString("(")
	b.WriteString(n.Label)
	for _, child := range n.Children {
		b.WriteString(" ")
		child.writeTo(b)
	}
	b.WriteString(")")
}

// Tree rebuilds the derivation of start recorded in the table. Only the first
// derivation found during parsing is kept, so ambiguous input gets one of its
// trees, always the same one.
func (r *Result) Tree(start grammar.Ident) (*Node, error) {
	if !r.Accepts {
		return nil, ErrNotAccepted
	}
	if r.Table.Len() == 0 {
		return &Node{Label: start.String(), Children: []*Node{leaf(grammar.Epsilon.String())}}, nil
	}

	return r.Table.build(Span{I: 0, J: r.Table.Len() - 1}, start)
}

func (t *Table) build(s Span, name grammar.Ident) (*Node, error) {
	b, ok := t.Backpointer(s.I, s.J, name)
	if !ok {
		return nil, errors.WithMessagef(ErrMissingBackpointer, "%v at %v", name, s)
	}

	if b.IsTerminal() {
		return &Node{Label: name.String(), Children: []*Node{leaf(b.Token.String())}}, nil
	}

	left, err := t.build(Span{I: s.I, J: b.Split}, b.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.build(Span{I: b.Split + 1, J: s.J}, b.Right)
	if err != nil {
		return nil, err
	}

	return &Node{Label: name.String(), Children: []*Node{left, right}}, nil
}

// Reconstruct returns the parse tree of tokens, or nil when res rejected them.
// tokens must be the ones res was built from.
func Reconstruct(tokens []string, res *Result, start grammar.Ident) *Node {
	if res == nil || res.Table == nil || res.Table.Len() != len(tokens) {
		return nil
	}

	tree, err := res.Tree(start)
	switch {
	case errors.Is(err, ErrNotAccepted):
		return nil
	case err != nil:
		log.Errorf("reconstructing %v: %v", start, err)
		return nil
	}

	return tree
}
