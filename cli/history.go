package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded runs",
		Long: `Without arguments, list the most recent runs recorded with "run --db".
With a run ID, list that run's cases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "perftcheck.db", "SQLite history database")
	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "number of runs to list")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions, args []string) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history", err)
	}
	defer st.Close()

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if len(args) == 1 {
		results, err := st.Results(cmd.Context(), args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read run", err)
		}
		if len(results) == 0 {
			return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", args[0]))
		}
		p.Fprintf(tw, "CASE\tDEPTH\tEXPECTED\tACTUAL\tRESULT\tREF\tENGINE\n")
		for _, r := range results {
			verdict := "PASS"
			if !r.Pass {
				verdict = "FAIL"
			}
			p.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%.2fs\t%.2fs\n",
				r.Name, r.Depth, r.Expected, r.Actual, verdict, r.RefTime.Seconds(), r.EngineTime.Seconds())
		}
		return tw.Flush()
	}

	runs, err := st.Recent(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}
	p.Fprintf(tw, "RUN\tSTARTED\tENGINE\tREFERENCE\tPASSED\tNODES\n")
	for _, r := range runs {
		p.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\t%d\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Engine, r.Reference, r.Passed, r.Passed+r.Failed, r.Nodes)
	}
	return tw.Flush()
}
