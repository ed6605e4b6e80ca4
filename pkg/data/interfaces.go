package data

import "github.com/quanttools/quantcore/pkg/types"

// Provider loads historical bars from some source.
type Provider interface {
	// LoadData loads bars from the specified source
	LoadData(source string) ([]types.OHLCV, error)

	// GetName returns the name of the data provider
	GetName() string
}
