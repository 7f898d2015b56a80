package grammar

import "github.com/quenbyako/cykparse/slices"

// RemoveEpsilonRules rewrites every rule into all its variants with some of the
// nullable nonterminals removed, and drops epsilon rules themselves. The second
// value reports whether start was nullable, since the result can't express it
// anymore.
//
// Nonterminals are kept even if they end up without rules.
//
// https://t.ly/xM1u
func RemoveEpsilonRules(start Ident, set RuleSet) (RuleSet, bool) {
	potentiallyEmpty := FindEpsilon(set)

	newSet := make(RuleSet, len(set))
	for _, name := range set.Names() {
		newSet = newSet.AppendRules(name)

		for _, rule := range set.GetRules(name) {
			if rule.IsEpsilon() {
				continue
			}

			variants := slices.Remap(rule, func(_ int, i Ident) IdentSet {
				if !potentiallyEmpty.Has(i) {
					return IdentSet{i}
				}
				return IdentSet{i, Epsilon}
			})

			for _, replaced := range slices.Possibles(variants) {
				filtered := slices.Filter(replaced, func(i Ident) bool { return !i.IsEpsilon() })
				if len(filtered) > 0 {
					newSet = newSet.AppendRules(name, filtered)
				}
			}
		}
	}

	return newSet, potentiallyEmpty.Has(start)
}

// FindEpsilon returns nullable nonterminals: the ones with an epsilon rule, or
// with a rule made only of nullable nonterminals.
//
// Every rule gets a counter of symbols not yet known to be nullable. When a
// nonterminal turns out nullable, counters of all rules using it are
// decreased, and a rule whose counter reaches zero makes its owner nullable.
func FindEpsilon(set RuleSet) Set[Ident] {
	indexes := fillEpsilonIndex(set)

	researchQueue := indexes.popQueue()
	for len(researchQueue) > 0 {
		for item := range researchQueue {
			indexes.decreaseCounter(item)
		}
		researchQueue = indexes.popQueue()
	}

	return indexes.res
}

type counterKey struct {
	id        Ident
	ruleIndex int
}

type epsilonIndex struct {
	m   map[Ident]identIndexes
	res Set[Ident]
}

type identIndexes struct {
	isEpsilon bool
	// one key per occurrence, so A -> B B needs B to be counted twice
	concernedRules []counterKey

	counters []int
}

func fillEpsilonIndex(set RuleSet) *epsilonIndex {
	res := &epsilonIndex{
		m:   make(map[Ident]identIndexes, len(set)),
		res: make(Set[Ident]),
	}

	for _, name := range set.Names() {
		rules := set.GetRules(name)

		res.setCounters(name, rules)
		res.setConcernRules(name, rules, set)
	}

	return res
}

func (i *epsilonIndex) popQueue() Set[Ident] {
	queue := Set[Ident]{}
	for id, c := range i.m {
		if slices.Contains(c.counters, 0) && !c.isEpsilon {
			queue[id] = struct{}{}
			i.setAsEpsilon(id)
			i.res[id] = struct{}{}
		}
	}

	return queue
}

func (i *epsilonIndex) setAsEpsilon(id Ident) {
	i.set(id, func(i *identIndexes) { i.isEpsilon = true })
}

func (i *epsilonIndex) setCounters(id Ident, rules []IdentSet) {
	i.set(id, func(i *identIndexes) {
		i.counters = slices.Remap(rules, func(_ int, rule IdentSet) int {
			if rule.IsEpsilon() {
				return 0
			}
			return len(rule)
		})
	})
}

func (i *epsilonIndex) decreaseCounter(id Ident) {
	for _, concerned := range i.m[id].concernedRules {
		i.m[concerned.id].counters[concerned.ruleIndex]--
	}
}

// setConcernRules stores for every nonterminal the rules it appears in:
//
//	S : A B C
//	S : D S
//
// A, B and C get (S, 0), D gets (S, 1) and S gets (S, 1) too. Terminals are
// skipped, they are never nullable, so their rules never reach zero.
func (i *epsilonIndex) setConcernRules(id Ident, rules []IdentSet, set RuleSet) {
	for ruleIndex, rule := range rules {
		if rule.IsEpsilon() {
			continue
		}

		for _, selector := range rule {
			if !set.Has(selector) {
				continue
			}

			i.set(selector, func(i *identIndexes) {
				i.concernedRules = append(i.concernedRules, counterKey{id: id, ruleIndex: ruleIndex})
			})
		}
	}
}

func (i *epsilonIndex) set(id Ident, f func(i *identIndexes)) {
	x := i.m[id]
	f(&x)
	i.m[id] = x
}
