package cyk_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/quenbyako/cykparse/cyk"
	"github.com/quenbyako/cykparse/grammar"
)

const exprGrammar = `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

const englishGrammar = `
S -> NP VP
NP -> Det N
VP -> V NP
Det -> the
N -> cat | dog
V -> chases
`

func TestParser_Parse(t *testing.T) {
	for _, tt := range []struct {
		name    string
		grammar string
		tokens  []string
		accepts bool
		tree    string
	}{{
		name:    "expression",
		grammar: exprGrammar,
		tokens:  []string{"id", "+", "id", "*", "id"},
		accepts: true,
	}, {
		name:    "broken expression",
		grammar: exprGrammar,
		tokens:  []string{"id", "+", "*"},
	}, {
		name:    "unknown token",
		grammar: exprGrammar,
		tokens:  []string{"id", "-", "id"},
	}, {
		name:    "sentence",
		grammar: englishGrammar,
		tokens:  []string{"the", "cat", "chases", "the", "dog"},
		accepts: true,
		tree:    "(S (NP (Det the) (N cat)) (VP (V chases) (NP (Det the) (N dog))))",
	}, {
		name:    "sentence without object",
		grammar: englishGrammar,
		tokens:  []string{"the", "cat", "chases"},
	}, {
		name:    "empty nullable",
		grammar: "S -> a | e",
		tokens:  []string{},
		accepts: true,
		tree:    "(S ε)",
	}, {
		name:    "empty not nullable",
		grammar: "S -> a",
		tokens:  []string{},
	}, {
		name:    "single token",
		grammar: "S -> a | e",
		tokens:  []string{"a"},
		accepts: true,
		tree:    "(S a)",
	}, {
		name:    "first split wins",
		grammar: "S -> S S | a",
		tokens:  []string{"a", "a", "a"},
		accepts: true,
		tree:    "(S (S a) (S (S a) (S a)))",
	}} {
		t.Run(tt.name, func(t *testing.T) {
			g := mustCNF(t, tt.grammar)
			p, err := NewParser(g)
			require.NoError(t, err)

			res := p.Parse(tt.tokens)
			require.Equal(t, tt.accepts, res.Accepts)
			require.Equal(t, len(tt.tokens), res.Table.Len())

			tree := Reconstruct(tt.tokens, res, g.Start)
			if !tt.accepts {
				require.Nil(t, tree)
				_, err := res.Tree(g.Start)
				require.ErrorIs(t, err, ErrNotAccepted)
				return
			}

			require.NotNil(t, tree)
			require.Equal(t, g.Start.String(), tree.Label)
			if tt.tree != "" {
				require.Equal(t, tt.tree, tree.Bracketed())
			}
			if len(tt.tokens) > 0 {
				require.Equal(t, tt.tokens, leaves(tree))
			}
		})
	}
}

func TestParser_Table(t *testing.T) {
	g := mustCNF(t, englishGrammar)
	tokens := []string{"the", "cat", "chases", "the", "dog"}

	res, err := Parse(g, tokens)
	require.NoError(t, err)
	require.True(t, res.Accepts)

	table := res.Table
	require.Equal(t, tokens, table.Tokens())
	require.Equal(t, []grammar.Ident{grammar.Sym("Det")}, table.Cell(0, 0))
	require.Equal(t, []grammar.Ident{grammar.Sym("NP")}, table.Cell(0, 1))
	require.Empty(t, table.Cell(1, 2))
	require.Equal(t, []grammar.Ident{grammar.Sym("VP")}, table.Cell(2, 4))
	require.Equal(t, []grammar.Ident{grammar.Sym("S")}, table.Cell(0, 4))
	require.Nil(t, table.Cell(3, 1))
	require.Nil(t, table.Cell(0, 5))

	b, ok := table.Backpointer(0, 4, grammar.Sym("S"))
	require.True(t, ok)
	require.False(t, b.IsTerminal())
	require.Equal(t, Backpointer{Split: 1, Left: grammar.Sym("NP"), Right: grammar.Sym("VP")}, b)
	require.Equal(t, "split 1: NP VP", b.String())

	b, ok = table.Backpointer(1, 1, grammar.Sym("N"))
	require.True(t, ok)
	require.True(t, b.IsTerminal())
	require.Equal(t, grammar.Sym("cat"), b.Token)
	require.Equal(t, "token cat", b.String())

	_, ok = table.Backpointer(0, 4, grammar.Sym("NP"))
	require.False(t, ok)

	require.Contains(t, table.String(), "{NP}")
	require.Equal(t, strings.Join([]string{
		"L=1 | {Det} | {N} | {V} | {Det} | {N}",
		"L=2 | {NP} | ∅ | ∅ | {NP}",
		"L=3 | ∅ | ∅ | {VP}",
		"L=4 | ∅ | ∅",
		"L=5 | {S}",
	}, "\n"), table.Levels())
}

func TestParser_Deterministic(t *testing.T) {
	g := mustCNF(t, "S -> S S | S + S | a | b")
	tokens := []string{"a", "+", "b", "a", "+", "a", "b"}

	first, err := Parse(g, tokens)
	require.NoError(t, err)
	second, err := Parse(g, tokens)
	require.NoError(t, err)

	require.True(t, first.Accepts)
	require.Equal(t, first.Accepts, second.Accepts)
	require.Equal(t, first.Table.String(), second.Table.String())
	for i := range tokens {
		for j := i; j < len(tokens); j++ {
			require.Equal(t, first.Table.Cell(i, j), second.Table.Cell(i, j))
		}
	}
	require.Equal(t,
		Reconstruct(tokens, first, g.Start).Bracketed(),
		Reconstruct(tokens, second, g.Start).Bracketed(),
	)
}

func TestParser_Concurrent(t *testing.T) {
	p, err := NewParser(mustCNF(t, exprGrammar))
	require.NoError(t, err)

	inputs := [][]string{
		{"id"},
		{"(", "id", "+", "id", ")", "*", "id"},
		{"id", "*", "(", "id", ")"},
		{"id", "+"},
	}
	expected := make([]string, len(inputs))
	for i, tokens := range inputs {
		if tree := Reconstruct(tokens, p.Parse(tokens), p.Grammar().Start); tree != nil {
			expected[i] = tree.Bracketed()
		}
	}

	var wg sync.WaitGroup
	got := make([][]string, 8)
	for n := range got {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			got[n] = make([]string, len(inputs))
			for i, tokens := range inputs {
				if tree := Reconstruct(tokens, p.Parse(tokens), p.Grammar().Start); tree != nil {
					got[n][i] = tree.Bracketed()
				}
			}
		}(n)
	}
	wg.Wait()

	for _, res := range got {
		require.Equal(t, expected, res)
	}
	require.Empty(t, expected[3])
}

func TestNewParser_NotCNF(t *testing.T) {
	g, err := grammar.ParseString(t.Name(), "S -> a b")
	require.NoError(t, err)

	_, err = NewParser(g)
	require.ErrorIs(t, err, grammar.ErrNotCNF)

	_, err = Parse(g, []string{"a", "b"})
	require.ErrorIs(t, err, grammar.ErrNotCNF)
}

func TestReconstruct_TokensMismatch(t *testing.T) {
	g := mustCNF(t, englishGrammar)
	res, err := Parse(g, []string{"the", "cat", "chases", "the", "dog"})
	require.NoError(t, err)

	require.Nil(t, Reconstruct([]string{"the", "cat"}, res, g.Start))
	require.Nil(t, Reconstruct(nil, nil, g.Start))
}

func TestResult_Tree_MissingBackpointer(t *testing.T) {
	g := mustCNF(t, englishGrammar)
	tokens := []string{"the", "cat", "chases", "the", "dog"}
	res, err := Parse(g, tokens)
	require.NoError(t, err)
	require.True(t, res.Accepts)

	// accepted input, but X derives nothing over it
	_, err = res.Tree(grammar.Sym("X"))
	require.ErrorIs(t, err, ErrMissingBackpointer)
	require.Nil(t, Reconstruct(tokens, res, grammar.Sym("X")))
}

func mustCNF(t *testing.T, src string) *grammar.Grammar {
	t.Helper()

	g, err := grammar.ParseString(t.Name(), src)
	require.NoError(t, err)
	cnf, err := g.AsCNF()
	require.NoError(t, err)

	return cnf
}

func leaves(n *Node) []string {
	if len(n.Children) == 0 {
		return []string{n.Label}
	}

	res := []string{}
	for _, child := range n.Children {
		res = append(res, leaves(child)...)
	}
	return res
}
