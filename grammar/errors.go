package grammar

import "github.com/pkg/errors"

var (
	// ErrEmptyGrammar is returned when a grammar has no productions at all.
	ErrEmptyGrammar = errors.New("grammar has no productions")
	// ErrUndefinedStart is returned when the start symbol has no productions.
	ErrUndefinedStart = errors.New("start symbol is not defined")
	// ErrMalformed wraps syntax errors of a grammar source.
	ErrMalformed = errors.New("malformed grammar")
	ErrNotCNF    = errors.New("grammar is not in Chomsky normal form")
)
