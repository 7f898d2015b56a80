package grammar

import (
	"encoding/binary"
	"fmt"

	"github.com/quenbyako/cykparse/constraints"
	"github.com/zeebo/xxh3"
)

const epsilonSymbol = "ε"

// Epsilon is the reserved symbol of the empty alternative. Rules store it as
// IdentSet{Epsilon}, never as a zero-length right-hand side.
var Epsilon = Ident{ID: epsilonSymbol}

// Ident is a grammar symbol. Whether it is a terminal or a nonterminal depends
// only on the grammar it is used in: nonterminals are the ones with rules.
//
// Symbols written by a user always have Index 0. Symbols created during
// conversion get a positive Index, so they can't clash with user symbols.
type Ident struct {
	ID    string
	Index uint64
}

// Sym is a shortcut for a user symbol.
func Sym(id string) Ident { return Ident{ID: id} }

func (i Ident) Generated() bool { return i.Index > 0 }
func (i Ident) IsEpsilon() bool { return i == Epsilon }

func (i Ident) String() string {
	if !i.Generated() {
		return i.ID
	}

	return fmt.Sprintf("%v_%d", i.ID, i.Index)
}

func (i Ident) Cmp(k Ident) int {
	switch {
	case i.ID != k.ID:
		return constraints.Comparator(i.ID, k.ID)
	case i.Index != k.Index:
		return constraints.Comparator(i.Index, k.Index)
	default:
		return 0
	}
}

func (i Ident) Hash() (uint64, error) {
	res := []byte(i.ID)
	res = binary.LittleEndian.AppendUint64(res, i.Index)

	return xxh3.Hash(res), nil
}

// IdentCounter hands out fresh symbols for a single conversion. An index is
// skipped when its rendering matches a symbol the grammar already has, so
// printed trees stay unambiguous.
type IdentCounter struct {
	last  map[string]uint64
	taken Set[string]
}

func NewIdentCounter(rules RuleSet) *IdentCounter {
	taken := make(Set[string])
	for name, rules := range rules {
		taken = taken.Append(name.String())
		for _, rule := range rules {
			for _, i := range rule {
				taken = taken.Append(i.String())
			}
		}
	}

	return &IdentCounter{
		last:  make(map[string]uint64),
		taken: taken,
	}
}

func (c *IdentCounter) NewIdent(id string) Ident {
	for {
		c.last[id]++
		res := Ident{ID: id, Index: c.last[id]}
		if c.taken.Has(res.String()) {
			continue
		}

		c.taken = c.taken.Append(res.String())
		return res
	}
}
