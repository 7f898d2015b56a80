package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quenbyako/cykparse/grammar"
)

func newCNFCmd() *cobra.Command {
	var grammarPath string

	cmd := &cobra.Command{
		Use:   "cnf",
		Short: "Convert a grammar to Chomsky normal form and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarPath, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# nonterminals: %v\n", symbols(g.NonTerminals()))
			fmt.Fprintf(out, "# terminals: %v\n", symbols(g.Terminals()))
			fmt.Fprintln(out, g.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "grammar file")
	_ = cmd.MarkFlagRequired("grammar")

	return cmd
}

func symbols(idents []grammar.Ident) string {
	res := make([]string, len(idents))
	for i, ident := range idents {
		res[i] = ident.String()
	}
	return strings.Join(res, " ")
}
