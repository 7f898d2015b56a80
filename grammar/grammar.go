package grammar

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/quenbyako/cykparse/slices"
	"golang.org/x/exp/maps"
)

// RuleSet maps every nonterminal to its right-hand sides. A name with an empty
// set is still a nonterminal, it just derives nothing.
type RuleSet map[Ident]HashSet[IdentSet]

func (r RuleSet) String() string {
	strs := make([]string, 0, len(r))

	for _, name := range r.Names() {
		rules := r.GetRules(name)
		if len(rules) == 0 {
			continue
		}

		strs = append(strs, name.String()+" -> "+stringify(rules, " | "))
	}

	return strings.Join(strs, "\n")
}

func (r RuleSet) AppendRules(name Ident, rule ...IdentSet) RuleSet {
	if r == nil {
		r = make(RuleSet, 1)
	}

	r[name] = r[name].Append(rule...)

	return r
}

func (r RuleSet) Has(name Ident) bool {
	_, ok := r[name]
	return ok
}

// Names returns nonterminals in a stable order.
func (r RuleSet) Names() []Ident { return slices.SortEq(maps.Keys(r)) }

// GetRules returns right-hand sides of name in a stable order.
func (r RuleSet) GetRules(name Ident) []IdentSet {
	rules, ok := r[name]
	if !ok {
		return []IdentSet{}
	}

	return slices.SortEq(maps.Values(rules))
}

// Len counts right-hand sides over all nonterminals.
func (r RuleSet) Len() (res int) {
	for _, rules := range r {
		res += len(rules)
	}
	return res
}

// Grammar is a context-free grammar. It is never changed after construction:
// every conversion step returns a new one.
type Grammar struct {
	Start Ident
	Rules RuleSet

	// StartNullable records that the grammar before conversion derives the empty
	// string. CNF rules can't say it themselves.
	StartNullable bool
}

func New(start Ident, rules RuleSet) *Grammar {
	return &Grammar{Start: start, Rules: rules}
}

// Validate reports configuration problems that make a grammar unusable.
func (g *Grammar) Validate() error {
	if g == nil || g.Rules.Len() == 0 {
		return ErrEmptyGrammar
	}
	if len(g.Rules[g.Start]) == 0 {
		return errors.WithMessagef(ErrUndefinedStart, "%v", g.Start)
	}

	return nil
}

func (g *Grammar) IsNonTerminal(i Ident) bool { return g.Rules.Has(i) }

func (g *Grammar) NonTerminals() []Ident { return g.Rules.Names() }

// Terminals returns every symbol used on a right-hand side which has no rules.
func (g *Grammar) Terminals() []Ident {
	res := make(Set[Ident])
	for _, rules := range g.Rules {
		for _, rule := range rules {
			for _, i := range rule {
				if !i.IsEpsilon() && !g.Rules.Has(i) {
					res = res.Append(i)
				}
			}
		}
	}

	return slices.SortEq(maps.Keys(res))
}

// String renders the grammar in the same format Parse reads, start symbol
// first.
func (g *Grammar) String() string {
	strs := make([]string, 0, len(g.Rules)+1)
	if g.StartNullable {
		strs = append(strs, fmt.Sprintf("# %v derives %v", g.Start, epsilonSymbol))
	}

	if rules := g.Rules.GetRules(g.Start); len(rules) > 0 {
		strs = append(strs, g.Start.String()+" -> "+stringify(rules, " | "))
	}

	rest := make(RuleSet, len(g.Rules))
	for name, rules := range g.Rules {
		if name != g.Start {
			rest[name] = rules
		}
	}
	if s := rest.String(); s != "" {
		strs = append(strs, s)
	}

	return strings.Join(strs, "\n")
}

func stringify[S ~[]T, T fmt.Stringer](s S, sep string) string {
	return strings.Join(slices.Remap(s, func(_ int, v T) string { return v.String() }), sep)
}

func fmtStringify[S ~[]T, T any](s S, sep string) string {
	return strings.Join(slices.Remap(s, func(_ int, v T) string { return fmt.Sprint(v) }), sep)
}
