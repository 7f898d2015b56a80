package grammar

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// epsilonLiteral is the reserved alternative meaning the empty string. ε works
// as well.
const epsilonLiteral = "e"

type source struct {
	P []*production `parser:"( @@ | EOL )*"`
}

type production struct {
	Pos lexer.Position

	N string         `parser:"@Symbol '->'"`
	E []*alternative `parser:"@@ ( '|' @@ )*"`
}

type alternative struct {
	S []string `parser:"@Symbol*"`
}

func (a alternative) normalize() IdentSet {
	if len(a.S) == 0 || len(a.S) == 1 && (a.S[0] == epsilonLiteral || a.S[0] == epsilonSymbol) {
		return IdentSet{Epsilon}
	}

	res := make(IdentSet, 0, len(a.S))
	for _, s := range a.S {
		// ε next to other symbols derives nothing, so it's just dropped
		if s != epsilonSymbol {
			res = append(res, Sym(s))
		}
	}

	return res
}

func (s source) normalize() *Grammar {
	res := &Grammar{Rules: make(RuleSet)}
	for i, p := range s.P {
		name := Sym(p.N)
		if i == 0 {
			res.Start = name
		}

		for _, alt := range p.E {
			res.Rules = res.Rules.AppendRules(name, alt.normalize())
		}
	}

	return res
}

var grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	// stops before ->, so S->a needs no spaces; a lone - is a symbol
	{Name: "Symbol", Pattern: `(?:[^\s|#-]|-[^\s|#>])+|-`},
})

var parser = participle.MustBuild[source](
	participle.Lexer(grammarLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a grammar, one production per line:
//
//	# comment
//	E -> E + T | T
//	T -> id | e
//
// Symbols are separated by whitespace, `e` or `ε` alone (or nothing at all)
// is the empty alternative. Productions of the same nonterminal are merged,
// the first one defines the start symbol.
func Parse(file string, input io.Reader) (*Grammar, error) {
	src, err := parser.Parse(file, input)
	if err != nil {
		return nil, errors.WithMessage(ErrMalformed, err.Error())
	}
	if len(src.P) == 0 {
		return nil, errors.WithMessagef(ErrEmptyGrammar, "%v", file)
	}

	g := src.normalize()
	log.Debugf("loaded %v: start %v, %d nonterminals", file, g.Start, len(g.Rules))

	return g, nil
}

func ParseString(file, input string) (*Grammar, error) {
	return Parse(file, strings.NewReader(input))
}

// Load parses a grammar file.
func Load(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening grammar")
	}
	defer f.Close()

	return Parse(path, f)
}
