package cli

import "github.com/spf13/cobra"

func (r *runner) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r.printf("%s", r.opts.BuildInfo.String())
		},
	}
}
