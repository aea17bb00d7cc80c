package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Goal is one coverage condition. Fitness is in [0, 1] and is 0 exactly when
// Covered holds.
type Goal interface {
	Fitness(trace *ExecutionTrace) float64
	Covered(trace *ExecutionTrace) bool
	String() string
}

// Criterion is a pluggable coverage criterion: it enumerates its goals from
// static analysis and scores executed traces. Smaller fitness is better and 0
// means every goal is covered.
type Criterion interface {
	Name() string
	Goals(ctx context.Context) ([]Goal, error)
	Fitness(ctx context.Context, traces []*ExecutionTrace) (float64, error)
}

// Normalize maps a distance in [0, inf) onto [0, 1).
func Normalize(d float64) float64 {
	if math.IsInf(d, 1) {
		return 1
	}

	return d / (d + 1)
}

// SuiteFitness sums, over goals, the best goal fitness any trace achieves. With
// no traces every goal counts as 1.
func SuiteFitness(ctx context.Context, goals []Goal, traces []*ExecutionTrace) (float64, error) {
	total := 0.0

	for _, goal := range goals {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		best := 1.0

		for _, trace := range traces {
			best = min(best, goal.Fitness(trace))
			if best == 0 {
				break
			}
		}

		total += best
	}

	return total, nil
}

// CoveredGoals returns the goals covered by at least one trace.
func CoveredGoals(goals []Goal, traces []*ExecutionTrace) []Goal {
	var covered []Goal

	for _, goal := range goals {
		for _, trace := range traces {
			if goal.Covered(trace) {
				covered = append(covered, goal)
				break
			}
		}
	}

	return covered
}

// EvaluateAll scores traces against every criterion concurrently and returns
// the fitness keyed by criterion name. Traces are only read.
func EvaluateAll(ctx context.Context, criteria []Criterion, traces []*ExecutionTrace) (map[string]float64, error) {
	var mu sync.Mutex

	results := make(map[string]float64, len(criteria))

	group, groupCtx := errgroup.WithContext(ctx)

	for _, criterion := range criteria {
		group.Go(func() error {
			fitness, err := criterion.Fitness(groupCtx, traces)
			if err != nil {
				slog.Error("Failed to compute fitness", "criterion", criterion.Name(), "error", err)
				return fmt.Errorf("%s fitness: %w", criterion.Name(), err)
			}

			mu.Lock()
			results[criterion.Name()] = fitness
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
