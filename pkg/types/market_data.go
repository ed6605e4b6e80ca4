package types

import "time"

// OHLCV is a single market bar. Indicators consume the close as a raw
// float64 scalar; exact decimal arithmetic starts at the sizing layer.
type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}
