// export_test.go exports private functions for white-box testing.
package process

import (
	"context"
	"time"

	"go.trai.ch/modup/internal/core/ports"
)

// Proc exports the process abstraction for fakes.
type Proc = proc

// NewWithProcesses creates an Unloader over a fixed process list.
func NewWithProcesses(logger ports.Logger, procs []Proc, grace time.Duration) *Unloader {
	u := New(logger)
	u.list = func(context.Context) ([]proc, error) { return procs, nil }
	u.grace = grace
	return u
}

// Within exports within for testing.
var Within = within
