package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/covtrace/internal/model"
)

func TestLocalSummaryStore(t *testing.T) {
	call := m.NewMethodCall("C", "m", 1, 2, 1)
	call.AddPosition(5, 0, 3.5, 0)
	call.AddPosition(m.NoBranch, 1, 0, 0)
	call.LineTrace = []int{12}

	summaries := []m.Summary{
		{
			Name:     "covers",
			TraceID:  "abc",
			Calls:    []*m.MethodCall{call},
			Branches: []m.BranchSummary{{ID: 5, Covered: 1, CoveredTrue: 1, MinFalse: 3.5}},
			Mutants:  []m.MutantSummary{{ID: 8, Distance: 0.25}},
			Counter:  1,
			Objects:  1,
			Fitness:  map[string]float64{"branch": 0.5},
		},
		{Name: "empty", TraceID: "def"},
	}

	t.Run("round trip", func(t *testing.T) {
		dir := m.Path(filepath.Join(t.TempDir(), "nested", "out"))
		store := NewLocalSummaryStore()

		require.NoError(t, store.SaveSummaries(dir, summaries))

		loaded, err := store.LoadSummaries(dir)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		assert.Equal(t, "covers", loaded[0].Name)
		require.Len(t, loaded[0].Calls, 1)
		assert.Equal(t, call, loaded[0].Calls[0])
		assert.Equal(t, summaries[0].Branches, loaded[0].Branches)
		assert.Equal(t, summaries[0].Fitness, loaded[0].Fitness)
		assert.Equal(t, "empty", loaded[1].Name)

		_, err = os.Stat(filepath.Join(string(dir), SummaryFileName+".tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("overwrites", func(t *testing.T) {
		dir := m.Path(t.TempDir())
		store := NewLocalSummaryStore()

		require.NoError(t, store.SaveSummaries(dir, summaries))
		require.NoError(t, store.SaveSummaries(dir, summaries[1:]))

		loaded, err := store.LoadSummaries(dir)
		require.NoError(t, err)
		assert.Len(t, loaded, 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewLocalSummaryStore().LoadSummaries(m.Path(filepath.Join(t.TempDir(), "none")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read summaries")
	})

	t.Run("directory is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o600))

		err := NewLocalSummaryStore().SaveSummaries(m.Path(filepath.Join(file, "out")), summaries)
		require.Error(t, err)
	})
}
