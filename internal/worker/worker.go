package worker

import (
	"context"
)

// Worker - the interface every background worker implements
type Worker interface {
	// Start runs the worker until stopped
	Start(ctx context.Context) error

	// Stop signals the worker to stop
	Stop() error

	// Name returns the worker name
	Name() string
}
