package domain

import (
	"maps"
	"reflect"
	"sort"
	"sync"
)

type branchStats struct {
	evaluations  int
	covered      int
	coveredTrue  int
	coveredFalse int
	minTrue      float64
	minFalse     float64
	sumTrue      float64
	sumFalse     float64
}

type methodTable map[string]map[string]map[int]int

// Coverage accumulates hit counters and distance minima for one trace. Every
// value only grows (counters, sums) or only shrinks (minima) until Reset.
type Coverage struct {
	mu       sync.RWMutex
	lines    methodTable
	returns  methodTable
	methods  map[string]int
	branches map[int]*branchStats
	mutants  map[int]float64
}

// NewCoverage creates empty tables.
func NewCoverage() *Coverage {
	return &Coverage{
		lines:    make(methodTable),
		returns:  make(methodTable),
		methods:  make(map[string]int),
		branches: make(map[int]*branchStats),
		mutants:  make(map[int]float64),
	}
}

// RecordBranch folds one evaluation into the branch's statistics. Hit counters
// are only touched when countHits is set; minima and sums always are.
func (c *Coverage) RecordBranch(branchID int, trueDistance, falseDistance float64, countHits bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.branches[branchID]
	if !ok {
		s = &branchStats{minTrue: trueDistance, minFalse: falseDistance}
		c.branches[branchID] = s
	}

	s.evaluations++
	s.minTrue = min(s.minTrue, trueDistance)
	s.minFalse = min(s.minFalse, falseDistance)
	s.sumTrue += trueDistance
	s.sumFalse += falseDistance

	if !countHits {
		return
	}

	s.covered++

	if trueDistance == 0 {
		s.coveredTrue++
	}

	if falseDistance == 0 {
		s.coveredFalse++
	}
}

// RecordLine counts one hit of a source line.
func (c *Coverage) RecordLine(className, methodName string, line int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines.inc(className, methodName, line)
}

// RecordMethod counts one entry into className.methodName.
func (c *Coverage) RecordMethod(className, methodName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.methods[className+"."+methodName]++
}

// RecordReturnValue counts one observation of value returned by a method.
func (c *Coverage) RecordReturnValue(className, methodName string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.returns.inc(className, methodName, value)
}

// RecordMutant marks a mutant as touched and keeps its smallest distance.
func (c *Coverage) RecordMutant(mutantID int, distance float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.mutants[mutantID]; ok {
		distance = min(old, distance)
	}

	c.mutants[mutantID] = distance
}

func (t methodTable) inc(className, methodName string, key int) {
	methods, ok := t[className]
	if !ok {
		methods = make(map[string]map[int]int)
		t[className] = methods
	}

	keys, ok := methods[methodName]
	if !ok {
		keys = make(map[int]int)
		methods[methodName] = keys
	}

	keys[key]++
}

func (t methodTable) get(className, methodName string, key int) int {
	return t[className][methodName][key]
}

func (t methodTable) clone() methodTable {
	out := make(methodTable, len(t))
	for className, methods := range t {
		cm := make(map[string]map[int]int, len(methods))
		for methodName, keys := range methods {
			cm[methodName] = maps.Clone(keys)
		}

		out[className] = cm
	}

	return out
}

func (c *Coverage) stats(branchID int) (branchStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.branches[branchID]
	if !ok {
		return branchStats{}, false
	}

	return *s, true
}

// CoveredCount returns how often the branch was evaluated while hit counting was on.
func (c *Coverage) CoveredCount(branchID int) int {
	s, _ := c.stats(branchID)
	return s.covered
}

// TrueCoveredCount returns how often the branch took its true outcome.
func (c *Coverage) TrueCoveredCount(branchID int) int {
	s, _ := c.stats(branchID)
	return s.coveredTrue
}

// FalseCoveredCount returns how often the branch took its false outcome.
func (c *Coverage) FalseCoveredCount(branchID int) int {
	s, _ := c.stats(branchID)
	return s.coveredFalse
}

// MinTrueDistance returns the smallest true distance seen for the branch.
func (c *Coverage) MinTrueDistance(branchID int) (float64, bool) {
	s, ok := c.stats(branchID)
	return s.minTrue, ok
}

// MinFalseDistance returns the smallest false distance seen for the branch.
func (c *Coverage) MinFalseDistance(branchID int) (float64, bool) {
	s, ok := c.stats(branchID)
	return s.minFalse, ok
}

// DistanceSums returns the running sums of true and false distances.
func (c *Coverage) DistanceSums(branchID int) (float64, float64, bool) {
	s, ok := c.stats(branchID)
	return s.sumTrue, s.sumFalse, ok
}

// AverageDistances returns the mean true and false distance over all evaluations.
func (c *Coverage) AverageDistances(branchID int) (float64, float64, bool) {
	s, ok := c.stats(branchID)
	if !ok || s.evaluations == 0 {
		return 0, 0, false
	}

	n := float64(s.evaluations)

	return s.sumTrue / n, s.sumFalse / n, true
}

// Branches returns the evaluated branch ids in ascending order.
func (c *Coverage) Branches() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return sortedKeys(c.branches)
}

// LineHits returns how often a line was reached.
func (c *Coverage) LineHits(className, methodName string, line int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lines.get(className, methodName, line)
}

// Lines returns the hit lines of a method in ascending order.
func (c *Coverage) Lines(className, methodName string) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return sortedKeys(c.lines[className][methodName])
}

// MethodHits returns how often className.methodName was entered.
func (c *Coverage) MethodHits(className, methodName string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.methods[className+"."+methodName]
}

// ReturnValueCount returns how often a method returned value.
func (c *Coverage) ReturnValueCount(className, methodName string, value int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.returns.get(className, methodName, value)
}

// MutantTouched reports whether execution reached the mutant.
func (c *Coverage) MutantTouched(mutantID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.mutants[mutantID]

	return ok
}

// MutantDistance returns the smallest distance recorded for a touched mutant.
func (c *Coverage) MutantDistance(mutantID int) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.mutants[mutantID]

	return d, ok
}

// Mutants returns the touched mutant ids in ascending order.
func (c *Coverage) Mutants() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return sortedKeys(c.mutants)
}

// Clone returns an independent copy of every table.
func (c *Coverage) Clone() *Coverage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	branches := make(map[int]*branchStats, len(c.branches))
	for id, s := range c.branches {
		cp := *s
		branches[id] = &cp
	}

	return &Coverage{
		lines:    c.lines.clone(),
		returns:  c.returns.clone(),
		methods:  maps.Clone(c.methods),
		branches: branches,
		mutants:  maps.Clone(c.mutants),
	}
}

// Equal compares every table.
func (c *Coverage) Equal(other *Coverage) bool {
	if c == other {
		return true
	}

	a, b := c.Clone(), other.Clone()

	return reflect.DeepEqual(a.lines, b.lines) &&
		reflect.DeepEqual(a.returns, b.returns) &&
		reflect.DeepEqual(a.methods, b.methods) &&
		reflect.DeepEqual(a.branches, b.branches) &&
		reflect.DeepEqual(a.mutants, b.mutants)
}

// Reset clears every table.
func (c *Coverage) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.lines)
	clear(c.returns)
	clear(c.methods)
	clear(c.branches)
	clear(c.mutants)
}

func sortedKeys[V any](in map[int]V) []int {
	out := make([]int, 0, len(in))
	for k := range in {
		out = append(out, k)
	}

	sort.Ints(out)

	return out
}
