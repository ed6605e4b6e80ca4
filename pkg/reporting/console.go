package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleReporter renders a run summary as a terminal table.
type ConsoleReporter struct{}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// PrintSummary prints the run summary table.
func (r *ConsoleReporter) PrintSummary(summary *RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("RUN SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Symbol", summary.Symbol},
		{"Bars streamed", fmt.Sprintf("%d (%d skipped)", summary.Bars, summary.Skipped)},
		{"Indicator", fmt.Sprintf("%s(%d)", summary.Indicator, summary.Period)},
		{"Final value", fmt.Sprintf("%.6f", summary.FinalValue)},
		{"Initialized", fmt.Sprintf("%t", summary.Initialized)},
		{"Entry", summary.Entry.String()},
		{"Stop loss", summary.StopLoss.String()},
		{"Equity", summary.Equity.String()},
		{"Sized quantity", summary.SizedQuantity.String()},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 16, Align: text.AlignLeft},
		{Number: 2, WidthMin: 24, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// PrintTail prints the last n points of the indicator series.
func (r *ConsoleReporter) PrintTail(series []SeriesPoint, n int) {
	if n > len(series) {
		n = len(series)
	}
	if n == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("LAST %d BARS", n)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Time", "Close", "Value", "State"})
	for _, point := range series[len(series)-n:] {
		t.AppendRow(table.Row{
			point.Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.2f", point.Close),
			fmt.Sprintf("%.6f", point.Value),
			point.State,
		})
	}

	t.Render()
	fmt.Println()
}
