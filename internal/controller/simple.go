package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// SimpleUI implements UI by printing tables to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints calls, branches, mutants and fitness of one trace.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("== %s (trace %s)\n", summary.Name, summary.TraceID)
	s.printf("def-use counter: %d, objects: %d\n", summary.Counter, summary.Objects)
	s.printf("\n%s", renderCallTable(summary.Calls))

	if len(summary.Branches) > 0 {
		s.printf("\n%s", renderBranchTable(summary.Branches))
	}

	if len(summary.Mutants) > 0 {
		s.printf("\n%s", renderMutantTable(summary.Mutants))
	}

	if len(summary.Fitness) > 0 {
		s.printf("\n%s", renderFitnessTable(summary.Fitness))
	}

	return nil
}

// DisplayDefUse prints the def-use timeline of one variable.
func (s *SimpleUI) DisplayDefUse(ctx context.Context, variable string, report string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("variable %s:\n%s", variable, report)
}

// DisplaySuiteFitness prints the fitness of all replayed traces together.
func (s *SimpleUI) DisplaySuiteFitness(ctx context.Context, traces int, fitness map[string]float64) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n== suite of %d trace(s)\n%s", traces, renderFitnessTable(fitness))
}

// DisplayError prints a failed replay.
func (s *SimpleUI) DisplayError(ctx context.Context, name string, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s: %v\n", name, err)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func renderCallTable(calls []*m.MethodCall) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"#", "Method", "ID", "Object", "Depth", "Positions", "Lines"})

	for i, call := range calls {
		name := call.FullName()
		if call.IsRoot() {
			name = "<root>"
		}

		table.Append([]string{
			strconv.Itoa(i),
			name,
			strconv.Itoa(call.MethodID),
			strconv.Itoa(call.CallingObjectID),
			strconv.Itoa(call.CallDepth),
			strconv.Itoa(call.Len()),
			strconv.Itoa(len(call.LineTrace)),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Calls %d", len(calls)), "", "", "", "", ""})
	table.Render()

	return buf.String()
}

func renderBranchTable(branches []m.BranchSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Branch", "Covered", "True", "False", "Min True", "Min False"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, b := range branches {
		table.Append([]string{
			strconv.Itoa(b.ID),
			strconv.Itoa(b.Covered),
			strconv.Itoa(b.CoveredTrue),
			strconv.Itoa(b.CoveredFalse),
			formatDistance(b.MinTrue),
			formatDistance(b.MinFalse),
		})
	}

	table.Render()

	return buf.String()
}

func renderMutantTable(mutants []m.MutantSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Mutant", "Distance"})
	for _, mu := range mutants {
		table.Append([]string{strconv.Itoa(mu.ID), formatDistance(mu.Distance)})
	}

	table.Render()

	return buf.String()
}

func renderFitnessTable(fitness map[string]float64) string {
	names := make([]string, 0, len(fitness))
	for name := range fitness {
		names = append(names, name)
	}

	sort.Strings(names)

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Criterion", "Fitness"})
	for _, name := range names {
		table.Append([]string{name, formatDistance(fitness[name])})
	}

	table.Render()

	return buf.String()
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', 4, 64)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
