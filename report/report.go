package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"loan-calculator/domain"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Write renders schedule in the given format. JSON matches the HTTP
// response body; the table rounds to cents for display only.
func Write(w io.Writer, format string, schedule domain.LoanSchedule) error {
	switch format {
	case FormatTable:
		return writeTable(w, schedule)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(schedule)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schedule); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func cents(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func writeTable(w io.Writer, schedule domain.LoanSchedule) error {
	totalInterest := decimal.Zero
	for _, record := range schedule.Data {
		totalInterest = totalInterest.Add(decimal.NewFromFloat(record.Interest))
	}

	fmt.Fprintf(w, "Monthly payment: %s\n", cents(schedule.MonthlyPayment))
	fmt.Fprintf(w, "Total payment:   %s\n", cents(schedule.TotalPayment))
	fmt.Fprintf(w, "Total interest:  %s\n\n", totalInterest.StringFixed(2))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tPrincipal\tInterest\t")
	for _, record := range schedule.Data {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", record.Month, cents(record.Principal), cents(record.Interest))
	}
	return tw.Flush()
}
