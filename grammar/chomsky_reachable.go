package grammar

import "golang.org/x/exp/maps"

// Reachable keeps only nonterminals which can be reached from start. Symbols
// walked through are right-hand side idents which have rules themselves.
func Reachable(start Ident, set RuleSet) RuleSet {
	reached := Set[Ident]{}.Append(start)
	queue := []Ident{start}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		for _, rule := range set[name] {
			for _, selector := range rule {
				if set.Has(selector) && !reached.Has(selector) {
					reached = reached.Append(selector)
					queue = append(queue, selector)
				}
			}
		}
	}

	res := make(RuleSet, len(reached))
	for name, rules := range set {
		if reached.Has(name) {
			res = res.AppendRules(name, maps.Values(rules)...)
		}
	}

	return res
}
