// Package adapter connects the trace engine to its external collaborators:
// the static analysis that enumerates coverage goals, and recorded event files.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// DefUsePool resolves definition and use ids assigned by static analysis.
type DefUsePool interface {
	Definition(id int) (m.DefUse, bool)
	Use(id int) (m.DefUse, bool)
	Definitions() []m.DefUse
	Uses() []m.DefUse
}

// BranchPool lists the branches known to static analysis.
type BranchPool interface {
	Branch(id int) (m.Branch, bool)
	Branches() []m.Branch
}

// MutantPool lists the mutants seeded into the code under test.
type MutantPool interface {
	Mutants() []int
}

// StaticPool is an in-memory DefUsePool, BranchPool and MutantPool.
type StaticPool struct {
	mu          sync.RWMutex
	definitions map[int]m.DefUse
	uses        map[int]m.DefUse
	branches    map[int]m.Branch
	mutants     map[int]struct{}
}

// NewStaticPool creates an empty pool.
func NewStaticPool() *StaticPool {
	return &StaticPool{
		definitions: make(map[int]m.DefUse),
		uses:        make(map[int]m.DefUse),
		branches:    make(map[int]m.Branch),
		mutants:     make(map[int]struct{}),
	}
}

// AddDefinition registers a definition site. Re-registering an id replaces it.
func (p *StaticPool) AddDefinition(du m.DefUse) {
	du.Kind = m.KindDefinition

	p.mu.Lock()
	defer p.mu.Unlock()

	p.definitions[du.ID] = du
}

// AddUse registers a use site.
func (p *StaticPool) AddUse(du m.DefUse) {
	du.Kind = m.KindUse

	p.mu.Lock()
	defer p.mu.Unlock()

	p.uses[du.ID] = du
}

// AddBranch registers a branch.
func (p *StaticPool) AddBranch(b m.Branch) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.branches[b.ID] = b
}

// AddMutant registers a mutant id.
func (p *StaticPool) AddMutant(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mutants[id] = struct{}{}
}

// Definition implements DefUsePool.
func (p *StaticPool) Definition(id int) (m.DefUse, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	du, ok := p.definitions[id]

	return du, ok
}

// Use implements DefUsePool.
func (p *StaticPool) Use(id int) (m.DefUse, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	du, ok := p.uses[id]

	return du, ok
}

// Definitions implements DefUsePool. The result is ordered by id.
func (p *StaticPool) Definitions() []m.DefUse {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return sortedDefUses(p.definitions)
}

// Uses implements DefUsePool. The result is ordered by id.
func (p *StaticPool) Uses() []m.DefUse {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return sortedDefUses(p.uses)
}

// Branch implements BranchPool.
func (p *StaticPool) Branch(id int) (m.Branch, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	b, ok := p.branches[id]

	return b, ok
}

// Branches implements BranchPool. The result is ordered by id.
func (p *StaticPool) Branches() []m.Branch {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]m.Branch, 0, len(p.branches))
	for _, b := range p.branches {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Mutants implements MutantPool. The result is sorted.
func (p *StaticPool) Mutants() []int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]int, 0, len(p.mutants))
	for id := range p.mutants {
		out = append(out, id)
	}

	sort.Ints(out)

	return out
}

func sortedDefUses(in map[int]m.DefUse) []m.DefUse {
	out := make([]m.DefUse, 0, len(in))
	for _, du := range in {
		out = append(out, du)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// poolFile is the on-disk layout of a static pool.
type poolFile struct {
	Branches    []m.Branch `yaml:"branches"`
	Definitions []m.DefUse `yaml:"definitions"`
	Uses        []m.DefUse `yaml:"uses"`
	Mutants     []int      `yaml:"mutants"`
}

// LoadStaticPool reads a YAML pool file.
func LoadStaticPool(path m.Path) (*StaticPool, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read pool file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read pool file: %w", err)
	}

	return ParseStaticPool(data)
}

// ParseStaticPool decodes a YAML pool document.
func ParseStaticPool(data []byte) (*StaticPool, error) {
	var file poolFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode pool: %w", err)
	}

	pool := NewStaticPool()
	for _, b := range file.Branches {
		pool.AddBranch(b)
	}

	for _, du := range file.Definitions {
		pool.AddDefinition(du)
	}

	for _, du := range file.Uses {
		pool.AddUse(du)
	}

	for _, id := range file.Mutants {
		pool.AddMutant(id)
	}

	slog.Debug("Loaded static pool",
		"branches", len(file.Branches),
		"definitions", len(file.Definitions),
		"uses", len(file.Uses),
		"mutants", len(file.Mutants))

	return pool, nil
}

// PoolSource loads static pools.
type PoolSource interface {
	Load(path m.Path) (*StaticPool, error)
}

// LocalPoolSource reads pool files from disk.
type LocalPoolSource struct{}

// NewLocalPoolSource constructs a LocalPoolSource.
func NewLocalPoolSource() *LocalPoolSource {
	return &LocalPoolSource{}
}

// Load implements PoolSource.
func (s *LocalPoolSource) Load(path m.Path) (*StaticPool, error) {
	return LoadStaticPool(path)
}
