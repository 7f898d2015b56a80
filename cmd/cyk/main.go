package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	verbosity int
	debug     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cyk",
		Short:        "Context-free grammar normalizer and CYK recognizer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "dump parse results")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCNFCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
