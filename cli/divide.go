package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/reference"
)

// DivideOptions holds flags for the divide command.
type DivideOptions struct {
	*RootOptions
	Reference string
}

// NewDivideCommand creates the divide command.
func NewDivideCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DivideOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "divide <fen> <depth>",
		Short: "Print the reference node count below each root move",
		Long: `Print the reference perft count below every legal root move, sorted by
move. Compare it with the engine's own divide output to find the move that
a failing case miscounts.

Example:
  perftcheck divide "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1" 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDivide(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.Reference, "reference", reference.Dragontooth, fmt.Sprintf("reference move generator %v", reference.Names()))

	return cmd
}

func runDivide(cmd *cobra.Command, opts *DivideOptions, fen, depthArg string) error {
	depth, err := strconv.Atoi(depthArg)
	if err != nil || depth < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("depth must be a positive integer, got %q", depthArg))
	}
	ref, err := reference.ByName(opts.Reference)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --reference", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	div, err := ref.Divide(ctx, fen, depth)
	if err != nil {
		return WrapExitError(ExitCommandError, "divide failed", err)
	}

	lines, total := reference.SortedDivide(div)
	out := cmd.OutOrStdout()
	for _, l := range lines {
		fmt.Fprintf(out, "%s: %d\n", l.Move, l.Nodes)
	}
	fmt.Fprintf(out, "Total: %d\n", total)
	return nil
}
