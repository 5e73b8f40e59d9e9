package cli

import (
	"github.com/spf13/cobra"

	"loan-calculator/domain"
	"loan-calculator/report"
	"loan-calculator/service"
)

func newCalculateCommand() *cobra.Command {
	var (
		input  domain.LoanInput
		output string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Print the amortization schedule for a loan",
		Example: "  loan-calculator calculate --amount 100000 --rate 5 --years 30\n" +
			"  loan-calculator calculate --amount 50000 --rate 4.5 --years 15 --output json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schedule, err := service.NewLoanService(nil, 0).CalculateLoan(cmd.Context(), input)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), output, schedule)
		},
	}

	cmd.Flags().Float64Var(&input.Amount, "amount", 0, "Loan principal")
	cmd.Flags().Float64Var(&input.Rate, "rate", 0, "Nominal annual interest rate in percent")
	cmd.Flags().IntVar(&input.Years, "years", 0, "Loan term in years")
	cmd.Flags().StringVarP(&output, "output", "o", report.FormatTable, "Output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}
