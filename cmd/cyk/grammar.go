package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quenbyako/cykparse/grammar"
)

// loadGrammar reads a grammar and converts it to CNF. Files with "cnf" in
// their name, or asIs set, are expected to be in CNF already.
func loadGrammar(path string, asIs bool) (*grammar.Grammar, error) {
	g, err := grammar.Load(path)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	if asIs || strings.Contains(strings.ToLower(filepath.Base(path)), "cnf") {
		if err := g.IsCNF(); err != nil {
			return nil, fmt.Errorf("%v: %w", path, err)
		}
		return g, nil
	}

	return g.AsCNF()
}
