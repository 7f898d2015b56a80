// Package cyk decides membership of token sequences in the language of a
// grammar in Chomsky normal form, and builds parse trees of accepted ones.
package cyk

import (
	"time"

	"github.com/quenbyako/cykparse/grammar"
	"github.com/quenbyako/cykparse/slices"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cyk.parser")

// Parser holds a CNF grammar and its inverse index. It is never changed after
// NewParser, so one Parser may serve many goroutines.
type Parser struct {
	grammar *grammar.Grammar
	index   *grammar.Inverse
}

// NewParser fails with grammar.ErrNotCNF if g is not in Chomsky normal form.
func NewParser(g *grammar.Grammar) (*Parser, error) {
	if err := g.IsCNF(); err != nil {
		return nil, err
	}

	return &Parser{
		grammar: g,
		index:   g.Inverse(),
	}, nil
}

func (p *Parser) Grammar() *grammar.Grammar { return p.grammar }

// Result of a single parse. Runtime covers filling the table only.
type Result struct {
	Accepts bool
	Runtime time.Duration
	Table   *Table
}

// Parse fills a fresh table for tokens. Rejected input is not an error, it
// just has Accepts set to false.
//
// Empty input is accepted only if the grammar was nullable before conversion.
func (p *Parser) Parse(tokens []string) *Result {
	terms := slices.Remap(tokens, func(_ int, s string) grammar.Ident { return grammar.Sym(s) })
	table := newTable(terms)
	if len(terms) == 0 {
		return &Result{Accepts: p.grammar.StartNullable, Table: table}
	}

	started := time.Now()

	for i := range terms {
		table.fillTerminal(i, p.index)
	}

	for length := 2; length <= len(terms); length++ {
		for i := 0; i+length-1 < len(terms); i++ {
			table.FillCell(Span{I: i, J: i + length - 1}, p.index)
		}
	}

	res := &Result{
		Accepts: table.Has(0, len(terms)-1, p.grammar.Start),
		Runtime: time.Since(started),
		Table:   table,
	}
	log.Debugf("parsed %d tokens in %v, accepted: %t", len(terms), res.Runtime, res.Accepts)

	return res
}

// Parse is a shortcut for a single parse with a fresh Parser.
func Parse(g *grammar.Grammar, tokens []string) (*Result, error) {
	p, err := NewParser(g)
	if err != nil {
		return nil, err
	}

	return p.Parse(tokens), nil
}
