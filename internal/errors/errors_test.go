package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInvalidArgument(t *testing.T) {
	err := NewInvalidArgument("FixedRiskSizer", "risk", "must be positive")

	assert.True(t, IsInvalidArgument(err))
	assert.False(t, IsData(err))
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
	assert.Contains(t, err.Error(), "FixedRiskSizer")
	assert.Contains(t, err.Error(), "invalid risk: must be positive")
}

func TestIsInvalidArgument_Wrapped(t *testing.T) {
	err := NewInvalidArgument("RateOfChange", "period", "must be greater than 1")
	wrapped := fmt.Errorf("constructing indicator: %w", err)

	assert.True(t, IsInvalidArgument(wrapped))
}

func TestWrapData(t *testing.T) {
	underlying := stderrors.New("no such file")
	err := WrapData(underlying, "CSVProvider", "open")

	assert.True(t, IsData(err))
	assert.False(t, IsInvalidArgument(err))
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "DATA")

	assert.Nil(t, WrapData(nil, "CSVProvider", "open"))
}

func TestIsInvalidArgument_PlainError(t *testing.T) {
	assert.False(t, IsInvalidArgument(stderrors.New("boom")))
	assert.False(t, IsInvalidArgument(nil))
}
