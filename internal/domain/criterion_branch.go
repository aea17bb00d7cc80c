package domain

import (
	"context"
	"fmt"

	"gooze.dev/pkg/covtrace/internal/adapter"
	m "gooze.dev/pkg/covtrace/internal/model"
)

// BranchGoal asks for one outcome of a branch.
type BranchGoal struct {
	Branch m.Branch
	Value  bool
}

// Covered implements Goal.
func (g BranchGoal) Covered(trace *ExecutionTrace) bool {
	d, ok := g.distance(trace)
	return ok && d == 0
}

// Fitness implements Goal: 1 when the branch never executed, otherwise the
// normalised minimum distance to the wanted outcome.
func (g BranchGoal) Fitness(trace *ExecutionTrace) float64 {
	d, ok := g.distance(trace)
	if !ok {
		return 1
	}

	return Normalize(d)
}

func (g BranchGoal) distance(trace *ExecutionTrace) (float64, bool) {
	return branchDistance(trace.Coverage(), g.Branch.ID, g.Value)
}

func (g BranchGoal) String() string {
	return fmt.Sprintf("branch %d %t", g.Branch.ID, g.Value)
}

func branchDistance(cov *Coverage, branchID int, value bool) (float64, bool) {
	if value {
		return cov.MinTrueDistance(branchID)
	}

	return cov.MinFalseDistance(branchID)
}

type branchCriterion struct {
	branches adapter.BranchPool
}

// NewBranchCriterion builds the criterion with one goal per branch outcome.
func NewBranchCriterion(branches adapter.BranchPool) Criterion {
	return &branchCriterion{branches: branches}
}

func (c *branchCriterion) Name() string {
	return "branch"
}

func (c *branchCriterion) Goals(ctx context.Context) ([]Goal, error) {
	if c.branches == nil {
		return nil, fmt.Errorf("%w: branch criterion without branch pool", ErrContractViolation)
	}

	branches := c.branches.Branches()
	goals := make([]Goal, 0, 2*len(branches))

	for _, b := range branches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		goals = append(goals, BranchGoal{Branch: b, Value: true}, BranchGoal{Branch: b, Value: false})
	}

	return goals, nil
}

func (c *branchCriterion) Fitness(ctx context.Context, traces []*ExecutionTrace) (float64, error) {
	goals, err := c.Goals(ctx)
	if err != nil {
		return 0, err
	}

	return SuiteFitness(ctx, goals, traces)
}
