package grammar

// ExplodeLongRules splits every rule longer than 2 symbols into a chain of
// binary rules. Chain nonterminals are named after the rule they came from.
//
// https://t.ly/-ilI
func ExplodeLongRules(set RuleSet, counter *IdentCounter) RuleSet {
	res := make(RuleSet, len(set))

	for _, name := range set.Names() {
		res = res.AppendRules(name)
		for _, rule := range set.GetRules(name) {
			replaced, more := explodeLongRule(rule, func() Ident { return counter.NewIdent(name.ID) })
			res = mapsMerge(res, more)
			res = res.AppendRules(name, replaced)
		}
	}

	return res
}

func explodeLongRule(r IdentSet, identGenerator func() Ident) (replaced IdentSet, moreRules RuleSet) {
	if len(r) <= 2 {
		return r, nil
	}
	explodedIdent := identGenerator()
	explodedRule, evenMore := explodeLongRule(r[1:], identGenerator)
	evenMore = evenMore.AppendRules(explodedIdent, explodedRule)

	return IdentSet{r[0], explodedIdent}, evenMore
}

func mapsMerge[M ~map[K]V, K comparable, V any](base M, maps ...M) M {
	if base == nil {
		base = make(M)
	}

	for _, item := range maps {
		for k, v := range item {
			base[k] = v
		}
	}
	return base
}
