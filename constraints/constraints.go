// Package constraints holds comparison helpers shared by the grammar types.
package constraints

import "golang.org/x/exp/constraints"

type Ordered = constraints.Ordered

// Compare is implemented by types with a total order.
type Compare[T any] interface {
	Cmp(T) int
}

// Comparator returns -1, 0 or +1 like strings.Compare does.
func Comparator[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

func Less[T Compare[T]](a, b T) bool { return a.Cmp(b) < 0 }
