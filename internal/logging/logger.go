package logging

import "go.uber.org/zap"

// New builds the process logger. Debug mode gets the human-readable
// development encoder, everything else JSON.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
