package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/quenbyako/cykparse/cyk"
	"github.com/quenbyako/cykparse/tokenize"
)

func newParseCmd() *cobra.Command {
	var grammarPath string
	var mode string
	var asIs bool

	cmd := &cobra.Command{
		Use:   "parse [input...]",
		Short: "Check input against a grammar and print its parse tree",
		Long: `Check input against a grammar and print its parse tree.

Without input, lines are read from stdin until EOF or "q". The line "cnf"
prints the grammar in use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := tokenize.ParseMode(mode)
			if err != nil {
				return err
			}

			g, err := loadGrammar(grammarPath, asIs)
			if err != nil {
				return err
			}

			p, err := cyk.NewParser(g)
			if err != nil {
				return fmt.Errorf("%v: %w", grammarPath, err)
			}

			s := &session{parser: p, mode: m, out: cmd.OutOrStdout()}
			if len(args) > 0 {
				s.run(strings.Join(args, " "))
				return nil
			}

			return s.loop(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "grammar file")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(tokenize.ModeExpr), "tokenizer (expr, words)")
	cmd.Flags().BoolVar(&asIs, "as-is", false, "grammar is in CNF already, don't convert it")
	_ = cmd.MarkFlagRequired("grammar")

	return cmd
}

type session struct {
	parser *cyk.Parser
	mode   tokenize.Mode
	out    io.Writer
}

func (s *session) loop(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for fmt.Fprint(s.out, "> "); scanner.Scan(); fmt.Fprint(s.out, "> ") {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "cnf":
			fmt.Fprintln(s.out, s.parser.Grammar().String())
			continue
		}

		s.run(line)
	}

	return scanner.Err()
}

func (s *session) run(input string) {
	tokens := s.mode.Tokenize(tokenize.StripAssignment(input))
	res := s.parser.Parse(tokens)

	verdict := "rejected"
	if res.Accepts {
		verdict = "accepted"
	}

	fmt.Fprintf(s.out, "tokens: %v\n", tokens)
	fmt.Fprintf(s.out, "%v (%d tokens, %.3f ms)\n", verdict, len(tokens), float64(res.Runtime.Microseconds())/1000)
	if res.Table.Len() > 0 {
		fmt.Fprint(s.out, res.Table.String())
		fmt.Fprintln(s.out, res.Table.Levels())
	}

	if tree := cyk.Reconstruct(tokens, res, s.parser.Grammar().Start); tree != nil {
		fmt.Fprintln(s.out, tree.Bracketed())
	}

	if debug {
		pp.Fprintln(s.out, res)
	}
}
