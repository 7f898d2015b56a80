package grammar

import "github.com/quenbyako/cykparse/slices"

// IsolateTerminals replaces terminals inside rules of 2 and more symbols with
// a dedicated nonterminal per terminal, T_a -> a. Single-symbol rules are kept
// as they are.
func IsolateTerminals(set RuleSet, counter *IdentCounter) RuleSet {
	res := make(RuleSet, len(set))

	isolated := make(map[Ident]Ident)
	replace := func(_ int, i Ident) Ident {
		if set.Has(i) {
			return i
		}
		if name, ok := isolated[i]; ok {
			return name
		}

		name := counter.NewIdent("T_" + i.String())
		isolated[i] = name
		return name
	}

	for _, name := range set.Names() {
		res = res.AppendRules(name)
		for _, rule := range set.GetRules(name) {
			if len(rule) < 2 {
				res = res.AppendRules(name, rule)
				continue
			}

			res = res.AppendRules(name, slices.Remap(rule, replace))
		}
	}

	for term, name := range isolated {
		res = res.AppendRules(name, IdentSet{term})
	}

	return res
}
