package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/covtrace/internal/domain"
	m "gooze.dev/pkg/covtrace/internal/model"
)

var poolFlag string
var outputFlag string
var objectFlag int
var useFlag int
var coverFlag bool
var rangeFlag string
var variableFlags []string
var markEntryFlag bool

// replayCmd represents the replay command.
var replayCmd = newReplayCmd()

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <scripts.yaml>",
		Short: "Replay recorded executions",
		Long:  replayLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseWindow(cmd, rangeFlag, useFlag, coverFlag)
			if err != nil {
				return err
			}

			return newWorkflow(engineConfig()).Replay(cmd.Context(), domain.ReplayArgs{
				Scripts:   m.Path(args[0]),
				Pool:      m.Path(viper.GetString(poolConfigKey)),
				ObjectID:  objectFlag,
				Window:    window,
				Variables: variableFlags,
				Output:    m.Path(viper.GetString(outputConfigKey)),
			})
		},
	}

	configureReplayFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func configureReplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&poolFlag, poolFlagName, "p", viper.GetString(poolConfigKey), "static analysis pool file (branches, mutants, definitions, uses)")
	bindFlagToConfig(cmd.Flags().Lookup(poolFlagName), poolConfigKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "directory to save the replay summaries to")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().BoolVar(&markEntryFlag, markEntryFlagName, viper.GetBool(traceMarkMethodEntryKey), "add a synthetic position on every method entry")
	bindFlagToConfig(cmd.Flags().Lookup(markEntryFlagName), traceMarkMethodEntryKey)

	cmd.Flags().IntVarP(&objectFlag, objectFlagName, "O", domain.NoObjectFilter, "also show the projection onto one object id")
	cmd.Flags().IntVar(&useFlag, useFlagName, 0, "use id whose method the --range projection is limited to")
	cmd.Flags().BoolVar(&coverFlag, coverFlagName, true, "drop control branch passes that would cover the use")
	cmd.Flags().StringVar(&rangeFlag, rangeFlagName, "", "def-use counter window START:END")
	cmd.Flags().StringArrayVar(&variableFlags, variableFlagName, nil, "print the def-use timeline of a variable (* for all, repeatable)")
}

func parseWindow(cmd *cobra.Command, value string, useID int, cover bool) (*domain.WindowArgs, error) {
	if value == "" {
		return nil, nil
	}

	if !cmd.Flags().Changed(useFlagName) {
		return nil, fmt.Errorf("--%s requires --%s", rangeFlagName, useFlagName)
	}

	start, end, err := parseRange(value)
	if err != nil {
		return nil, err
	}

	return &domain.WindowArgs{UseID: useID, WantToCover: cover, Start: start, End: end}, nil
}

func parseRange(value string) (int, int, error) {
	var start, end int

	value = strings.TrimSpace(value)
	if _, err := fmt.Sscanf(value, "%d:%d", &start, &end); err != nil {
		return 0, 0, fmt.Errorf("invalid range %q, want START:END: %w", value, err)
	}

	return start, end, nil
}
