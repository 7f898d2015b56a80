package cyk

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/quenbyako/cykparse/grammar"
	"github.com/quenbyako/cykparse/slices"
	"golang.org/x/exp/maps"
)

// Table is the upper triangle of the CYK matrix: cell (i, j) holds every
// nonterminal deriving tokens i..j. Each parse gets its own table.
//
// координаты:
// O J →
// I
// ↓   ↘
type Table struct {
	terms []grammar.Ident
	// cells[i][j-i], so the row of i only keeps spans starting at i
	cells [][]cell
}

func newTable(terms []grammar.Ident) *Table {
	t := &Table{
		terms: terms,
		cells: make([][]cell, len(terms)),
	}
	for i := range t.cells {
		t.cells[i] = make([]cell, len(terms)-i)
	}

	return t
}

// Len is the number of tokens.
func (t *Table) Len() int { return len(t.terms) }

func (t *Table) Tokens() []string {
	return slices.Remap(t.terms, func(_ int, i grammar.Ident) string { return i.String() })
}

func (t *Table) inBounds(i, j int) bool { return 0 <= i && i <= j && j < len(t.terms) }

func (t *Table) at(s Span) *cell {
	if !t.inBounds(s.I, s.J) {
		panic(fmt.Sprintf("%v is out of bounds", s))
	}

	return &t.cells[s.I][s.J-s.I]
}

// Cell returns sorted nonterminals deriving tokens i..j. The slice must not be
// changed.
func (t *Table) Cell(i, j int) []grammar.Ident {
	if !t.inBounds(i, j) {
		return nil
	}

	return t.at(Span{I: i, J: j}).Idents
}

// Backpointer returns the first derivation of a over tokens i..j found by
// the parser.
func (t *Table) Backpointer(i, j int, a grammar.Ident) (Backpointer, bool) {
	if !t.inBounds(i, j) {
		return Backpointer{}, false
	}

	b, ok := t.at(Span{I: i, J: j}).Back[a]
	return b, ok
}

func (t *Table) Has(i, j int, a grammar.Ident) bool {
	_, ok := t.Backpointer(i, j, a)
	return ok
}

func (t *Table) fillTerminal(i int, index *grammar.Inverse) {
	c := t.at(Span{I: i, J: i})
	for _, name := range index.Terminals[t.terms[i]] {
		c.add(name, terminalBackpointer(t.terms[i]))
	}

	c.Idents = slices.SortEq(maps.Keys(c.Back))
}

// FillCell combines every split of the span. Both halves are shorter, so they
// are complete already. Splits go left to right, and candidates of each half
// in sorted order, that makes the kept backpointer the same on every run.
func (t *Table) FillCell(s Span, index *grammar.Inverse) {
	if s.I >= s.J {
		panic(fmt.Sprintf("%v must be filled from tokens", s))
	}

	c := t.at(s)
	for k := s.I; k < s.J; k++ {
		left, right := t.at(Span{I: s.I, J: k}), t.at(Span{I: k + 1, J: s.J})

		for _, leftNode := range left.Idents {
			for _, rightNode := range right.Idents {
				for _, name := range index.Pairs[grammar.DualRule{leftNode, rightNode}] {
					c.add(name, Backpointer{Split: k, Left: leftNode, Right: rightNode})
				}
			}
		}
	}

	c.Idents = slices.SortEq(maps.Keys(c.Back))
}

func (t *Table) String() string {
	if len(t.terms) == 0 {
		return ""
	}

	buf := bytes.NewBuffer(nil)
	w := tablewriter.NewWriter(buf)
	w.SetAutoFormatHeaders(false)
	w.SetHeader(append([]string{""}, t.Tokens()...))

	for i := range t.terms {
		row := make([]string, len(t.terms)+1)
		row[0] = fmt.Sprint(i)
		for j := i; j < len(t.terms); j++ {
			row[j+1] = stringifyCell(t.Cell(i, j))
		}
		w.Append(row)
	}

	w.Render()

	return buf.String()
}

// Levels lists cells by span length, shortest first:
//
//	L=1 | {Det} | {N}
//	L=2 | {NP}
func (t *Table) Levels() string {
	lines := make([]string, 0, len(t.terms))
	for l := 1; l <= len(t.terms); l++ {
		cells := make([]string, 0, len(t.terms)-l+1)
		for i := 0; i+l-1 < len(t.terms); i++ {
			cells = append(cells, stringifyCell(t.Cell(i, i+l-1)))
		}
		lines = append(lines, fmt.Sprintf("L=%d | %v", l, strings.Join(cells, " | ")))
	}

	return strings.Join(lines, "\n")
}

func stringifyCell(idents []grammar.Ident) string {
	if len(idents) == 0 {
		return "∅"
	}

	return "{" + strings.Join(slices.Remap(idents, func(_ int, i grammar.Ident) string { return i.String() }), ", ") + "}"
}
