// Package emit delivers check reports to the external monitoring pipeline.
// The wire format is the sink's concern; the CheckResult schema is fixed.
package emit

import (
	"context"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// Emitter delivers one report. Emitters are independent; a sink failure
// never alters the report or other sinks.
type Emitter interface {
	Emit(ctx context.Context, report domain.Report) error
}

// Multi fans one report out to several sinks, returning the first error
// after attempting all of them.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, report domain.Report) error {
	var firstErr error
	for _, e := range m {
		if err := e.Emit(ctx, report); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
