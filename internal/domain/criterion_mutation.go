package domain

import (
	"context"
	"fmt"

	"gooze.dev/pkg/covtrace/internal/adapter"
)

// MutantGoal asks for a mutant to be reached and detected.
type MutantGoal struct {
	MutantID int
}

// Covered implements Goal.
func (g MutantGoal) Covered(trace *ExecutionTrace) bool {
	d, ok := trace.Coverage().MutantDistance(g.MutantID)
	return ok && d == 0
}

// Fitness implements Goal.
func (g MutantGoal) Fitness(trace *ExecutionTrace) float64 {
	d, ok := trace.Coverage().MutantDistance(g.MutantID)
	if !ok {
		return 1
	}

	return Normalize(d)
}

func (g MutantGoal) String() string {
	return fmt.Sprintf("mutant %d", g.MutantID)
}

type mutationCriterion struct {
	mutants adapter.MutantPool
}

// NewMutationCriterion builds the criterion with one goal per seeded mutant.
func NewMutationCriterion(mutants adapter.MutantPool) Criterion {
	return &mutationCriterion{mutants: mutants}
}

func (c *mutationCriterion) Name() string {
	return "mutation"
}

func (c *mutationCriterion) Goals(_ context.Context) ([]Goal, error) {
	if c.mutants == nil {
		return nil, fmt.Errorf("%w: mutation criterion without mutant pool", ErrContractViolation)
	}

	ids := c.mutants.Mutants()
	goals := make([]Goal, len(ids))

	for i, id := range ids {
		goals[i] = MutantGoal{MutantID: id}
	}

	return goals, nil
}

func (c *mutationCriterion) Fitness(ctx context.Context, traces []*ExecutionTrace) (float64, error) {
	goals, err := c.Goals(ctx)
	if err != nil {
		return 0, err
	}

	return SuiteFitness(ctx, goals, traces)
}
