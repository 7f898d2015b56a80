package cyk

import (
	"fmt"

	"github.com/quenbyako/cykparse/grammar"
)

// Span is a range of token positions, both ends included.
type Span struct{ I, J int }

func (s Span) String() string { return fmt.Sprintf("span[%v:%v]", s.I, s.J) }

func (s Span) Len() int { return s.J - s.I + 1 }

// Backpointer tells how a nonterminal got into a cell. Cells of length 1 are
// filled by matching the token (Token is set), longer ones by combining Left
// over [I:Split] with Right over [Split+1:J].
type Backpointer struct {
	Token grammar.Ident

	Split       int
	Left, Right grammar.Ident
}

func (b Backpointer) IsTerminal() bool { return b.Split < 0 }

func (b Backpointer) String() string {
	if b.IsTerminal() {
		return "token " + b.Token.String()
	}

	return fmt.Sprintf("split %d: %v", b.Split, grammar.DualRule{b.Left, b.Right})
}

func terminalBackpointer(token grammar.Ident) Backpointer {
	return Backpointer{Token: token, Split: -1}
}

// cell holds nonterminals deriving a span. Idents keeps them sorted once the
// cell is complete.
type cell struct {
	Idents []grammar.Ident
	Back   map[grammar.Ident]Backpointer
}

// add records the first derivation of i only.
func (c *cell) add(i grammar.Ident, b Backpointer) {
	if _, ok := c.Back[i]; ok {
		return
	}
	if c.Back == nil {
		c.Back = make(map[grammar.Ident]Backpointer)
	}

	c.Back[i] = b
}
