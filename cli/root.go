package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the loan-calculator command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "loan-calculator",
		Short:         "Fixed-rate loan amortization calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newCalculateCommand())
	return rootCmd
}
