package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loadwerk/loadcell/cmd/loadcell/internal/clierr"
	"github.com/loadwerk/loadcell/internal/report"
	"github.com/loadwerk/loadcell/internal/results"
	"github.com/loadwerk/loadcell/pkg/step"
)

// NewResultsCommand returns the `loadcell results` command.
func NewResultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Record and report step outcomes",
	}

	cmd.AddCommand(newResultsRecordCommand())
	cmd.AddCommand(newResultsReportCommand())
	cmd.AddCommand(newResultsWatchCommand())
	cmd.AddCommand(newResultsResetCommand())

	return cmd
}

func stateStore() *results.Store {
	return results.NewStore(viper.GetString("state-dir"))
}

func newResultsRecordCommand() *cobra.Command {
	var pass, fail bool

	cmd := &cobra.Command{
		Use:   "record <method>",
		Short: "Append one step outcome to the results journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pass == fail {
				return clierr.New(clierr.CodeConfig, "record: exactly one of --pass or --fail is required")
			}

			rec := results.Record{Method: args[0], Result: step.NewResult(pass)}
			if err := stateStore().Append(rec); err != nil {
				return clierr.Wrap(clierr.CodeRuntime, "recording result", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rec.Method, rec.Result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pass, "pass", false, "record a passing outcome")
	cmd.Flags().BoolVar(&fail, "fail", false, "record a failing outcome")

	return cmd
}

func newResultsReportCommand() *cobra.Command {
	var (
		asJSON  bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the results journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := stateStore().Records()
			if err != nil {
				return clierr.Wrap(clierr.CodeRuntime, "reading results", err)
			}

			if len(records) == 0 && !asJSON && outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No results recorded.")
				return nil
			}

			sum := report.Summarize(records)

			if outPath != "" {
				if err := report.WriteFile(outPath, []byte(report.RenderMarkdown(sum))); err != nil {
					return clierr.Wrap(clierr.CodeRuntime, "writing report", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", outPath)
				return nil
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}

			report.RenderText(cmd.OutOrStdout(), sum)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	cmd.Flags().StringVar(&outPath, "out", "", "write a markdown report to this path")

	return cmd
}

func newResultsWatchCommand() *cobra.Command {
	var fromStart bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the results journal and print outcomes as they land",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err := stateStore().Follow(ctx, results.FollowOptions{FromStart: fromStart}, func(rec results.Record) error {
				report.RenderRecord(cmd.OutOrStdout(), rec)
				return nil
			})
			if err != nil {
				return clierr.Wrap(clierr.CodeRuntime, "watching journal", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStart, "from-start", false, "replay existing journal entries before following")

	return cmd
}

func newResultsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all recorded results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := stateStore().Reset(); err != nil {
				return clierr.Wrap(clierr.CodeRuntime, "clearing results", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Cleared recorded results")
			return nil
		},
	}
}
