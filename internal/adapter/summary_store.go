package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// SummaryFileName is the file a SummaryStore writes inside its directory.
const SummaryFileName = "summaries.yaml"

// SummaryStore persists the summaries of a replay run.
type SummaryStore interface {
	SaveSummaries(dir m.Path, summaries []m.Summary) error
	LoadSummaries(dir m.Path) ([]m.Summary, error)
}

// LocalSummaryStore keeps summaries as one YAML file per directory.
type LocalSummaryStore struct{}

// NewLocalSummaryStore constructs a LocalSummaryStore.
func NewLocalSummaryStore() *LocalSummaryStore {
	return &LocalSummaryStore{}
}

// SaveSummaries implements SummaryStore. An existing file is replaced.
func (s *LocalSummaryStore) SaveSummaries(dir m.Path, summaries []m.Summary) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create summary directory", "dir", dir, "error", err)
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	data, err := yaml.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to encode summaries: %w", err)
	}

	path := filepath.Join(string(dir), SummaryFileName)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		slog.Error("Failed to write summaries", "path", tmp, "error", err)
		return fmt.Errorf("failed to write summaries: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		slog.Error("Failed to move summaries into place", "path", path, "error", err)
		return fmt.Errorf("failed to write summaries: %w", err)
	}

	slog.Info("Saved summaries", "path", path, "count", len(summaries))

	return nil
}

// LoadSummaries implements SummaryStore.
func (s *LocalSummaryStore) LoadSummaries(dir m.Path) ([]m.Summary, error) {
	path := filepath.Join(string(dir), SummaryFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read summaries", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read summaries: %w", err)
	}

	var summaries []m.Summary
	if err := yaml.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}

	return summaries, nil
}
