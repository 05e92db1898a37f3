package app

import (
	"go.uber.org/zap"
)

// NewLogger returns a development logger on stderr when verbose is set,
// and a no-op logger otherwise.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
