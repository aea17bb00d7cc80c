// Package domain contains the execution trace engine and the fitness contract
// built on top of it.
package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the per-trace switches. It is copied into every trace and never
// changes during the trace's life.
type Config struct {
	// TraceCalls enables the call stack, per-call positions and the def-use log.
	TraceCalls bool
	// TraceCoverage enables hit counters for lines, methods and branch outcomes.
	TraceCoverage bool
	// MarkMethodEntry seeds every new frame with a synthetic position so that a
	// call is visible to counter slicing even before its first branch.
	MarkMethodEntry bool
	// RecordBranchEvals keeps every branch evaluation in chronological order.
	RecordBranchEvals bool
	// RecordCallContexts attaches a stack snapshot to each kept evaluation.
	RecordCallContexts bool
	// InitialCallCapacity preallocates the finished call list.
	InitialCallCapacity int `validate:"gte=0,lte=1048576"`
}

// DefaultConfig traces calls and coverage, which is what every criterion needs.
func DefaultConfig() Config {
	return Config{
		TraceCalls:          true,
		TraceCoverage:       true,
		InitialCallCapacity: 16,
	}
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(configStructLevel, Config{})

	return v
}

func configStructLevel(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	if cfg.RecordCallContexts && !cfg.RecordBranchEvals {
		sl.ReportError(cfg.RecordCallContexts, "RecordCallContexts", "RecordCallContexts", "requires_branch_evals", "")
	}

	if (cfg.MarkMethodEntry || cfg.RecordCallContexts) && !cfg.TraceCalls {
		sl.ReportError(cfg.TraceCalls, "TraceCalls", "TraceCalls", "required_by_call_options", "")
	}
}

// Validate reports inconsistent switch combinations.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid trace config: %w", err)
	}

	return nil
}
