package cyk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/quenbyako/cykparse/cyk"
)

// words returns every sequence over alphabet up to maxLen tokens long.
func words(alphabet []string, maxLen int) [][]string {
	res := [][]string{{}}
	last := [][]string{{}}
	for l := 1; l <= maxLen; l++ {
		next := [][]string{}
		for _, w := range last {
			for _, a := range alphabet {
				next = append(next, append(append([]string{}, w...), a))
			}
		}
		res = append(res, next...)
		last = next
	}
	return res
}

func count(w []string, s string) (res int) {
	for _, item := range w {
		if item == s {
			res++
		}
	}
	return res
}

func TestParser_Language(t *testing.T) {
	for _, tt := range []struct {
		name     string
		grammar  string
		alphabet []string
		in       func(w []string) bool
	}{{
		name:     "a^n b^n",
		grammar:  "S -> a S b | e",
		alphabet: []string{"a", "b"},
		in: func(w []string) bool {
			n := len(w) / 2
			if len(w)%2 != 0 {
				return false
			}
			for i := range w {
				if (i < n) != (w[i] == "a") {
					return false
				}
			}
			return true
		},
	}, {
		name:     "palindromes",
		grammar:  "S -> a S a | b S b | a | b | e",
		alphabet: []string{"a", "b"},
		in: func(w []string) bool {
			for i := range w {
				if w[i] != w[len(w)-1-i] {
					return false
				}
			}
			return true
		},
	}, {
		name:     "same number of a and b",
		grammar:  "S -> a S b S | b S a S | e",
		alphabet: []string{"a", "b"},
		in:       func(w []string) bool { return count(w, "a") == count(w, "b") },
	}, {
		name:     "balanced parentheses",
		grammar:  "S -> ( S ) S | e",
		alphabet: []string{"(", ")"},
		in: func(w []string) bool {
			depth := 0
			for _, item := range w {
				if item == "(" {
					depth++
				} else if depth--; depth < 0 {
					return false
				}
			}
			return depth == 0
		},
	}, {
		name: "nonempty with chains",
		grammar: `
S -> A | B
A -> a A | X
X -> B
B -> b
`,
		alphabet: []string{"a", "b"},
		in: func(w []string) bool {
			// a* b
			return len(w) > 0 && w[len(w)-1] == "b" && count(w, "b") == 1
		},
	}} {
		t.Run(tt.name, func(t *testing.T) {
			g := mustCNF(t, tt.grammar)
			p, err := NewParser(g)
			require.NoError(t, err)

			for _, w := range words(tt.alphabet, 7) {
				res := p.Parse(w)
				require.Equal(t, tt.in(w), res.Accepts, "%q", w)

				if res.Accepts && len(w) > 0 {
					tree, err := res.Tree(g.Start)
					require.NoError(t, err, "%q", w)
					require.Equal(t, w, leaves(tree))
				}
			}
		})
	}
}
