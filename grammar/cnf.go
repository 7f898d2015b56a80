package grammar

import (
	"github.com/pkg/errors"
	"github.com/quenbyako/cykparse/slices"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cyk.grammar")

// AsCNF returns an equivalent grammar in Chomsky normal form. g itself is not
// changed. Passes go in this order, each one relies on the previous ones:
//
//  1. unreachable nonterminals are dropped;
//  2. epsilon rules are removed, nullability of start is kept in StartNullable;
//  3. chain rules are removed;
//  4. terminals of long rules get their own nonterminals;
//  5. long rules are split into binary ones.
//
// Finally nonterminals which can't derive any terminal string are dropped
// together with rules using them, and unreachable ones are pruned again.
func (g *Grammar) AsCNF() (*Grammar, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	counter := NewIdentCounter(g.Rules)

	rules := Reachable(g.Start, g.Rules)
	log.Debugf("reachable: %d of %d nonterminals", len(rules), len(g.Rules))

	rules, nullable := RemoveEpsilonRules(g.Start, rules)
	log.Debugf("epsilon removed: %d rules, start nullable: %t", rules.Len(), nullable)

	rules = PopChains(rules)
	log.Debugf("chains removed: %d rules", rules.Len())

	rules = IsolateTerminals(rules, counter)
	log.Debugf("terminals isolated: %d rules", rules.Len())

	rules = ExplodeLongRules(rules, counter)
	log.Debugf("long rules split: %d rules", rules.Len())

	rules = Reachable(g.Start, dropNonGenerating(rules))
	res := &Grammar{
		Start:         g.Start,
		Rules:         rules,
		StartNullable: nullable || g.StartNullable,
	}
	log.Debugf("cnf: %d nonterminals, %d terminals, %d rules", len(rules), len(res.Terminals()), rules.Len())

	return res, nil
}

// dropNonGenerating removes nonterminals which derive no terminal string at
// all, together with every rule using them.
func dropNonGenerating(set RuleSet) RuleSet {
	generating := make(Set[Ident])
	useless := func(i Ident) bool { return set.Has(i) && !generating.Has(i) }

	for changed := true; changed; {
		changed = false
		for name, rules := range set {
			if generating.Has(name) {
				continue
			}
			for _, rule := range rules {
				if !slices.ContainsFunc(rule, useless) {
					generating = generating.Append(name)
					changed = true
					break
				}
			}
		}
	}

	res := make(RuleSet, len(generating))
	for name, rules := range set {
		if !generating.Has(name) {
			continue
		}

		for _, rule := range rules {
			if !slices.ContainsFunc(rule, useless) {
				res = res.AppendRules(name, rule)
			}
		}
	}

	return res
}

// IsCNF checks that every rule is either a single terminal or a pair of
// nonterminals.
func (g *Grammar) IsCNF() error {
	for _, name := range g.NonTerminals() {
		for _, rule := range g.Rules.GetRules(name) {
			switch {
			case len(rule) == 1 && !rule[0].IsEpsilon() && !g.IsNonTerminal(rule[0]):
			case len(rule) == 2 && g.IsNonTerminal(rule[0]) && g.IsNonTerminal(rule[1]):
			default:
				return errors.WithMessagef(ErrNotCNF, "%v -> %v", name, rule)
			}
		}
	}

	return nil
}

// Inverse maps right-hand sides of a CNF grammar to the nonterminals producing
// them. Producers are sorted.
type Inverse struct {
	Terminals map[Ident][]Ident
	Pairs     map[DualRule][]Ident
}

// Inverse builds the index of a CNF grammar. It panics on rules which are not
// in CNF, call IsCNF first.
func (g *Grammar) Inverse() *Inverse {
	res := &Inverse{
		Terminals: make(map[Ident][]Ident),
		Pairs:     make(map[DualRule][]Ident),
	}

	for _, name := range g.NonTerminals() {
		for _, rule := range g.Rules.GetRules(name) {
			switch len(rule) {
			case 1:
				res.Terminals[rule[0]] = append(res.Terminals[rule[0]], name)
			case 2:
				pair := DualRule{rule[0], rule[1]}
				res.Pairs[pair] = append(res.Pairs[pair], name)
			default:
				panic("got non-cnf rule! " + name.String() + " -> " + rule.String())
			}
		}
	}

	return res
}
