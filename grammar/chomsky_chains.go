package grammar

// PopChains removes chain rules (A -> B, B is a nonterminal). Every nonterminal
// gets the non-chain rules of all nonterminals it reaches through chains,
// itself included.
func PopChains(set RuleSet) RuleSet {
	res := make(RuleSet, len(set))

	for _, name := range set.Names() {
		res = res.AppendRules(name, GetUnchained(set, name, make(Set[Ident]))...)
	}

	return res
}

// GetUnchained collects non-chain rules of i, following chain rules deeper.
// walked holds nonterminals already visited, so cyclic chains like A -> B,
// B -> A end up in the same closure instead of looping forever.
func GetUnchained(set RuleSet, i Ident, walked Set[Ident]) []IdentSet {
	if walked.Has(i) {
		return nil
	}
	walked[i] = struct{}{}

	rules := set.GetRules(i)
	res := make([]IdentSet, 0, len(rules))
	for _, rule := range rules {
		if isChain(set, rule) {
			res = append(res, GetUnchained(set, rule[0], walked)...)
			continue
		}

		res = append(res, rule)
	}

	return res
}

func isChain(set RuleSet, rule IdentSet) bool {
	return len(rule) == 1 && set.Has(rule[0])
}
