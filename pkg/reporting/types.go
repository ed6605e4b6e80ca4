package reporting

import (
	"time"

	"github.com/quanttools/quantcore/pkg/types"
)

// SeriesPoint is one bar's indicator reading for the run report.
type SeriesPoint struct {
	Timestamp   time.Time
	Close       float64
	Value       float64
	State       string
	Initialized bool
}

// RunSummary captures one demo run: the data streamed, the final
// indicator reading and the position sized off the last close.
type RunSummary struct {
	Symbol        string
	Bars          int
	Skipped       int
	Indicator     string
	Period        int
	FinalValue    float64
	Initialized   bool
	Entry         types.Price
	StopLoss      types.Price
	Equity        types.Money
	SizedQuantity types.Quantity
}
