package grammar

import (
	"golang.org/x/exp/maps"
)

// WTF??? https://github.com/golang/go/issues/46477
type Set[T comparable] map[T]struct{}

func (s Set[T]) Append(k ...T) Set[T] {
	if s == nil {
		s = make(Set[T])
	}
	for _, item := range k {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(k T) bool {
	_, ok := s[k]
	return ok
}

func (s Set[T]) String() string { return "set[" + fmtStringify(maps.Keys(s), " ") + "]" }

type Hasher interface {
	Hash() (uint64, error)
}

// HashSet keys its items by their xxh3 hash, so slices can be stored in a set.
type HashSet[T Hasher] map[uint64]T

func (s HashSet[T]) Has(k T) bool {
	if s == nil {
		return false
	}

	h, err := k.Hash()
	if err != nil {
		panic(err)
	}

	_, ok := s[h]
	return ok
}

func (s HashSet[T]) Append(k ...T) HashSet[T] {
	if s == nil {
		s = make(HashSet[T])
	}

	for _, item := range k {
		h, err := item.Hash()
		if err != nil {
			panic(err)
		}

		s[h] = item
	}

	return s
}

func (s HashSet[T]) String() string { return "set[" + fmtStringify(maps.Values(s), " ") + "]" }
