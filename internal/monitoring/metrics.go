package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Sizing metrics
	sizingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantcore_sizings_total",
			Help: "Total number of position sizings computed",
		},
		[]string{"symbol", "outcome"},
	)

	positionSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quantcore_position_size",
			Help: "Last computed position size in instrument units",
		},
		[]string{"symbol"},
	)

	// Indicator metrics
	indicatorUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantcore_indicator_updates_total",
			Help: "Total number of indicator updates processed",
		},
		[]string{"indicator"},
	)

	indicatorValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quantcore_indicator_value",
			Help: "Last computed indicator value",
		},
		[]string{"indicator", "symbol"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantcore_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(sizingsTotal)
	prometheus.MustRegister(positionSize)
	prometheus.MustRegister(indicatorUpdatesTotal)
	prometheus.MustRegister(indicatorValue)
	prometheus.MustRegister(errorsTotal)
}

// Sizing outcomes
const (
	SizingOutcomeSized      = "sized"
	SizingOutcomeDegenerate = "degenerate"
	SizingOutcomeRejected   = "rejected"
)

// RecordSizing records a position sizing metric
func RecordSizing(symbol, outcome string, size float64) {
	sizingsTotal.WithLabelValues(symbol, outcome).Inc()
	positionSize.WithLabelValues(symbol).Set(size)
}

// RecordIndicatorUpdate records an indicator update metric
func RecordIndicatorUpdate(indicator, symbol string, value float64) {
	indicatorUpdatesTotal.WithLabelValues(indicator).Inc()
	indicatorValue.WithLabelValues(indicator, symbol).Set(value)
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
