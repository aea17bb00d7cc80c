package domain

import (
	"log/slog"

	"gooze.dev/pkg/covtrace/internal/adapter"
	"gooze.dev/pkg/covtrace/pkg"
)

// TracePool recycles traces between executions so that a long search does not
// reallocate the nested tables for every run.
type TracePool struct {
	pool pkg.Pool[*ExecutionTrace]
}

// NewTracePool validates cfg once and returns a pool of traces built from it.
func NewTracePool(cfg Config, defUse adapter.DefUsePool) (*TracePool, error) {
	if err := cfg.Validate(); err != nil {
		slog.Error("Rejected trace pool config", "error", err)
		return nil, err
	}

	return &TracePool{
		pool: pkg.NewPool(func() *ExecutionTrace {
			// cfg was validated above, the constructor cannot fail.
			t, _ := NewExecutionTrace(cfg, defUse)
			return t
		}),
	}, nil
}

// Get returns a fresh or reset trace.
func (p *TracePool) Get() *ExecutionTrace {
	return p.pool.Get()
}

// Put resets trace and keeps it for reuse. The caller must not touch it again;
// clones and projections taken earlier stay valid.
func (p *TracePool) Put(trace *ExecutionTrace) {
	p.pool.Put(trace)
}

// Stats reports how many traces were created and how many reused.
func (p *TracePool) Stats() (created, reused uint64) {
	return p.pool.Stats()
}
