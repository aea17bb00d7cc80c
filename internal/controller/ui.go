// Package controller renders trace summaries for the command line.
package controller

import (
	"context"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// UI defines how replay results are shown.
type UI interface {
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayDefUse(ctx context.Context, variable string, report string)
	DisplaySuiteFitness(ctx context.Context, traces int, fitness map[string]float64)
	DisplayError(ctx context.Context, name string, err error)
}
