package adapter

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// ScriptSource loads recorded executions.
type ScriptSource interface {
	// Load returns every script stored at path, in file order.
	Load(path m.Path) ([]m.Script, error)
}

// LocalScriptSource reads YAML scripts from disk. A file holds either a single
// script or a list of scripts.
type LocalScriptSource struct{}

// NewLocalScriptSource constructs a LocalScriptSource.
func NewLocalScriptSource() *LocalScriptSource {
	return &LocalScriptSource{}
}

// Load implements ScriptSource.
func (s *LocalScriptSource) Load(path m.Path) ([]m.Script, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read script file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	scripts, err := ParseScripts(data)
	if err != nil {
		slog.Error("Failed to parse script file", "path", path, "error", err)
		return nil, err
	}

	return scripts, nil
}

// ParseScripts decodes one script or a sequence of scripts.
func ParseScripts(data []byte) ([]m.Script, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode scripts: %w", err)
	}

	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var scripts []m.Script
		if err := root.Decode(&scripts); err != nil {
			return nil, fmt.Errorf("failed to decode scripts: %w", err)
		}

		return scripts, nil
	}

	var script m.Script
	if err := root.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	return []m.Script{script}, nil
}
