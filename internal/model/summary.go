package model

// BranchSummary is the aggregate state of one branch.
type BranchSummary struct {
	ID           int     `yaml:"id"`
	Covered      int     `yaml:"covered"`
	CoveredTrue  int     `yaml:"covered_true"`
	CoveredFalse int     `yaml:"covered_false"`
	MinTrue      float64 `yaml:"min_true"`
	MinFalse     float64 `yaml:"min_false"`
}

// MutantSummary is the aggregate state of one touched mutant.
type MutantSummary struct {
	ID       int     `yaml:"id"`
	Distance float64 `yaml:"distance"`
}

// Summary is a printable snapshot of a trace.
type Summary struct {
	Name     string             `yaml:"name"`
	TraceID  string             `yaml:"trace_id"`
	Calls    []*MethodCall      `yaml:"calls"`
	Branches []BranchSummary    `yaml:"branches"`
	Mutants  []MutantSummary    `yaml:"mutants"`
	Counter  int                `yaml:"counter"`
	Objects  int                `yaml:"objects"`
	Fitness  map[string]float64 `yaml:"fitness,omitempty"`
}
