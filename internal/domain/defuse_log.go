package domain

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// passedLog maps variable -> object id -> counter -> definition or use id.
type passedLog map[string]map[int]map[int]int

func (l passedLog) add(variable string, objectID, counter, id int) {
	objects, ok := l[variable]
	if !ok {
		objects = make(map[int]map[int]int)
		l[variable] = objects
	}

	entries, ok := objects[objectID]
	if !ok {
		entries = make(map[int]int)
		objects[objectID] = entries
	}

	entries[counter] = id
}

func (l passedLog) copyOf(variable string) map[int]map[int]int {
	objects, ok := l[variable]
	if !ok {
		return nil
	}

	out := make(map[int]map[int]int, len(objects))
	for objectID, entries := range objects {
		out[objectID] = maps.Clone(entries)
	}

	return out
}

func (l passedLog) clone() passedLog {
	out := make(passedLog, len(l))
	for variable := range l {
		out[variable] = l.copyOf(variable)
	}

	return out
}

// DefUseLog is the totally ordered history of definitions and uses. A single
// counter is shared by both kinds so that the reaching definition of a use is
// the latest definition with a smaller counter, regardless of call nesting.
type DefUseLog struct {
	counter     int
	definitions passedLog
	uses        passedLog
}

// NewDefUseLog creates an empty log.
func NewDefUseLog() *DefUseLog {
	return &DefUseLog{
		definitions: make(passedLog),
		uses:        make(passedLog),
	}
}

// AddDefinition records a definition and returns the counter it consumed.
func (l *DefUseLog) AddDefinition(variable string, objectID, defID int) int {
	c := l.counter
	l.definitions.add(variable, objectID, c, defID)
	l.counter++

	return c
}

// AddUse records a use and returns the counter it consumed.
func (l *DefUseLog) AddUse(variable string, objectID, useID int) int {
	c := l.counter
	l.uses.add(variable, objectID, c, useID)
	l.counter++

	return c
}

// Counter returns the value the next definition or use will receive.
func (l *DefUseLog) Counter() int {
	return l.counter
}

// Variables returns every variable with at least one definition or use.
func (l *DefUseLog) Variables() []string {
	seen := make(map[string]struct{}, len(l.definitions)+len(l.uses))
	for v := range l.definitions {
		seen[v] = struct{}{}
	}

	for v := range l.uses {
		seen[v] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}

	sort.Strings(out)

	return out
}

// Clone returns an independent copy.
func (l *DefUseLog) Clone() *DefUseLog {
	return &DefUseLog{
		counter:     l.counter,
		definitions: l.definitions.clone(),
		uses:        l.uses.clone(),
	}
}

// Reset empties the log and restarts the counter.
func (l *DefUseLog) Reset() {
	l.counter = 0
	clear(l.definitions)
	clear(l.uses)
}

// Report renders the timeline of one variable, one line per object, e.g.
// "(0:Def 10), (2:Use 11)".
func (l *DefUseLog) Report(variable string) string {
	objectIDs := make(map[int]struct{})
	for id := range l.definitions[variable] {
		objectIDs[id] = struct{}{}
	}

	for id := range l.uses[variable] {
		objectIDs[id] = struct{}{}
	}

	ids := sortedKeys(objectIDs)

	var b strings.Builder

	for _, objectID := range ids {
		if len(ids) > 1 {
			fmt.Fprintf(&b, "on object %d: ", objectID)
		}

		b.WriteString(l.timeline(variable, objectID))
		b.WriteString("\n")
	}

	return b.String()
}

func (l *DefUseLog) timeline(variable string, objectID int) string {
	type entry struct {
		counter int
		text    string
	}

	var entries []entry

	for c, id := range l.definitions[variable][objectID] {
		entries = append(entries, entry{c, fmt.Sprintf("(%d:Def %d)", c, id)})
	}

	for c, id := range l.uses[variable][objectID] {
		entries = append(entries, entry{c, fmt.Sprintf("(%d:Use %d)", c, id)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].counter < entries[j].counter })

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.text
	}

	return strings.Join(parts, ", ")
}
