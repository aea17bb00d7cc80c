package model

import "fmt"

// DefUseKind tells definitions and uses apart.
type DefUseKind string

const (
	// KindDefinition is a write of a variable.
	KindDefinition DefUseKind = "definition"
	// KindUse is a read of a variable.
	KindUse DefUseKind = "use"
)

// Branch identifies a conditional jump in the code under test.
type Branch struct {
	ID            int    `yaml:"id"`
	InstructionID int    `yaml:"instruction"`
	ClassName     string `yaml:"class"`
	MethodName    string `yaml:"method"`
}

// DefUse is the static description of a definition or use site. It is produced
// by static analysis before any test runs.
type DefUse struct {
	ID         int        `yaml:"id"`
	Kind       DefUseKind `yaml:"kind"`
	Variable   string     `yaml:"variable"`
	ClassName  string     `yaml:"class"`
	MethodName string     `yaml:"method"`
	// Static marks class-level variables whose history is shared by all objects.
	Static bool `yaml:"static"`
	// ControlBranch is the branch this site is control dependent on, nil for the
	// method's root branch.
	ControlBranch *Branch `yaml:"control_branch,omitempty"`
	// ControlValue is the outcome of ControlBranch that leads to this site.
	ControlValue bool `yaml:"control_value"`
}

func (du DefUse) String() string {
	return fmt.Sprintf("%s %d %s in %s.%s", du.Kind, du.ID, du.Variable, du.ClassName, du.MethodName)
}
