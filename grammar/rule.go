package grammar

import (
	"encoding/binary"

	"github.com/quenbyako/cykparse/constraints"
	"github.com/zeebo/xxh3"
)

const emptyHash uint64 = 0x2d06800538d394c2

// IdentSet is a single right-hand side of a rule.
type IdentSet []Ident

func (s IdentSet) String() string {
	if len(s) == 0 {
		return epsilonSymbol
	}

	return stringify(s, " ")
}

func (r IdentSet) IsEpsilon() bool { return len(r) == 1 && r[0].IsEpsilon() }

func (r IdentSet) Cmp(j IdentSet) int {
	for i := 0; i < len(r) && i < len(j); i++ {
		if res := r[i].Cmp(j[i]); res != 0 {
			return res
		}
	}

	return constraints.Comparator(len(r), len(j))
}

func (s IdentSet) Hash() (uint64, error) {
	if len(s) == 0 {
		return emptyHash, nil
	}

	res := make([]byte, 0, len(s)*8)
	for _, ident := range s {
		h, _ := ident.Hash()
		res = binary.LittleEndian.AppendUint64(res, h)
	}

	return xxh3.Hash(res), nil
}

// DualRule is the right-hand side of a binary CNF rule.
type DualRule [2]Ident

func (r DualRule) String() string { return r[0].String() + " " + r[1].String() }
