package cli

import (
	"github.com/spf13/cobra"
)

const flagOlderThan = "older-than"

func (r *runner) gcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gc",
		Short: "Delete notes that were created but never saved",
		Long: `Deletes empty notes older than --older-than. Without the flag the
placeholder TTL from the configuration is used (24h by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}

			olderThan := r.cfg.Workers.PlaceholderTTL
			if cmd.Flags().Changed(flagOlderThan) {
				olderThan, _ = cmd.Flags().GetDuration(flagOlderThan)
			}

			ids, err := rt.Notes.PurgePlaceholders(ctx, olderThan)
			if err != nil {
				return fail(err)
			}
			r.success("removed %d empty note(s)", len(ids))
			return nil
		},
	}
	cmd.Flags().Duration(flagOlderThan, 0, "minimum age of the empty notes to delete, e.g. 1h")
	return cmd
}
