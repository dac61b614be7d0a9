package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// CasesOptions holds flags for the cases command.
type CasesOptions struct {
	*RootOptions
	Suite  string
	Filter string
}

// NewCasesCommand creates the cases command.
func NewCasesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CasesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List the cases a run would check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSuite(opts.Suite)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load suite", err)
			}
			s, err = s.Filter(opts.Filter)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --filter", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tDEPTH\tFEN\n")
			for _, c := range s.Cases {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Name, c.Depth, c.FEN)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Suite, "suite", "", "YAML suite file (default: built-in suite)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only list cases whose name matches this glob")

	return cmd
}
