// Package cmd provides the root command and CLI setup for covtrace.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/covtrace/internal/adapter"
	"gooze.dev/pkg/covtrace/internal/controller"
	"gooze.dev/pkg/covtrace/internal/domain"
)

var scriptSource adapter.ScriptSource
var poolSource adapter.PoolSource
var summaryStore adapter.SummaryStore
var ui controller.UI

// newWorkflow is swapped in tests.
var newWorkflow = func(cfg domain.Config) domain.Workflow {
	return domain.NewWorkflow(scriptSource, poolSource, summaryStore, ui, cfg)
}

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	scriptSource = adapter.NewLocalScriptSource()
	poolSource = adapter.NewLocalPoolSource()
	summaryStore = adapter.NewLocalSummaryStore()
}

const rootLongDescription = `covtrace replays recorded instrumentation events through the
execution trace engine used for search-based test generation, and prints the
resulting call records, coverage tables, distances and criterion fitness.`

const replayLongDescription = `Replay the scripts stored in a YAML file.

Each script is one test execution. Static analysis output (branches, mutants,
definitions and uses) is read from --pool.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "covtrace",
		Short: "Execution trace and coverage bookkeeping",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
