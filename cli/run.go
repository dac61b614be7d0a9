package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/engine"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/harness"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/reference"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/store"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/suite"
)

// EngineEnv supplies the default for --engine.
const EngineEnv = "PERFTCHECK_ENGINE"

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Engine    string
	Suite     string
	Filter    string
	Reference string
	Timeout   time.Duration
	Database  string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compare the engine with the reference on every case",
		Long: `Run every case of the suite: count nodes with the reference move
generator, run "<engine> <fen> <depth>", and compare the two counts.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (bad suite, malformed FEN, engine could not start)

Examples:
  perftcheck run --engine ./nice
  perftcheck run --engine ./nice --suite endgames.yaml --filter "Pos *"
  perftcheck run --engine ./nice --timeout 30s --db perft.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Engine, "engine", os.Getenv(EngineEnv), "engine executable (default $"+EngineEnv+")")
	cmd.Flags().StringVar(&opts.Suite, "suite", "", "YAML suite file (default: built-in suite)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run cases whose name matches this glob")
	cmd.Flags().StringVar(&opts.Reference, "reference", reference.Dragontooth, fmt.Sprintf("reference move generator %v", reference.Names()))
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "kill the engine after this long (0 waits forever)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite history database")

	return cmd
}

func runSuite(cmd *cobra.Command, opts *RunOptions) error {
	if opts.Engine == "" {
		return NewExitError(ExitCommandError, "no engine configured: pass --engine or set "+EngineEnv)
	}

	ref, err := reference.ByName(opts.Reference)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --reference", err)
	}

	s, err := loadSuite(opts.Suite)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suite", err)
	}
	s, err = s.Filter(opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --filter", err)
	}
	if len(s.Cases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cases selected.")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := &harness.Runner{
		Reference: ref,
		Engine: &engine.Invoker{
			Path:    opts.Engine,
			Timeout: opts.Timeout,
			Logger:  slog.Default(),
		},
		Out:        cmd.OutOrStdout(),
		Logger:     slog.Default(),
		EngineName: opts.Engine,
	}

	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		runner.Recorder = st
	}

	slog.Debug("running suite", "suite", s.Name, "cases", len(s.Cases), "engine", opts.Engine, "reference", ref.Name())
	sum, err := runner.Run(ctx, s.Cases)
	if err != nil {
		return WrapExitError(ExitCommandError, "run aborted", err)
	}
	if !sum.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d cases failed", sum.Failed, len(sum.Outcomes)))
	}
	return nil
}

func loadSuite(path string) (suite.Suite, error) {
	if path == "" {
		return suite.Default(), nil
	}
	return suite.Load(path)
}
