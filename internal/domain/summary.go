package domain

import (
	m "gooze.dev/pkg/covtrace/internal/model"
)

// Summary snapshots t for display.
func (t *ExecutionTrace) Summary(name string) m.Summary {
	cov := t.coverage

	branches := make([]m.BranchSummary, 0)
	for _, id := range cov.Branches() {
		s, _ := cov.stats(id)
		branches = append(branches, m.BranchSummary{
			ID:           id,
			Covered:      s.covered,
			CoveredTrue:  s.coveredTrue,
			CoveredFalse: s.coveredFalse,
			MinTrue:      s.minTrue,
			MinFalse:     s.minFalse,
		})
	}

	mutants := make([]m.MutantSummary, 0)
	for _, id := range cov.Mutants() {
		d, _ := cov.MutantDistance(id)
		mutants = append(mutants, m.MutantSummary{ID: id, Distance: d})
	}

	return m.Summary{
		Name:     name,
		TraceID:  t.ID(),
		Calls:    t.FinishedCalls(),
		Branches: branches,
		Mutants:  mutants,
		Counter:  t.Counter(),
		Objects:  t.KnownObjects(),
	}
}
