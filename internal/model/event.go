package model

// EventKind names one inbound instrumentation operation.
type EventKind string

const (
	EventEnter      EventKind = "enter"
	EventExit       EventKind = "exit"
	EventBranch     EventKind = "branch"
	EventLine       EventKind = "line"
	EventDefinition EventKind = "def"
	EventUse        EventKind = "use"
	EventReturn     EventKind = "return"
	EventMutant     EventKind = "mutant"
)

// Event is a recorded instrumentation callback. Only the fields relevant to
// Kind are read.
type Event struct {
	Kind          EventKind    `yaml:"kind"`
	ClassName     string       `yaml:"class,omitempty"`
	MethodName    string       `yaml:"method,omitempty"`
	Caller        ObjectHandle `yaml:"caller,omitempty"`
	BranchID      int          `yaml:"branch,omitempty"`
	InstructionID int          `yaml:"instruction,omitempty"`
	TrueDistance  float64      `yaml:"true,omitempty"`
	FalseDistance float64      `yaml:"false,omitempty"`
	Line          int          `yaml:"line,omitempty"`
	DefUseID      int          `yaml:"id,omitempty"`
	Value         int          `yaml:"value,omitempty"`
	MutantID      int          `yaml:"mutant,omitempty"`
	Distance      float64      `yaml:"distance,omitempty"`
}

// Script is a recorded test execution.
type Script struct {
	Name   string  `yaml:"name"`
	Events []Event `yaml:"events"`
}
