package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notebook/internal/tui"
)

const flagParent = "parent"

func (r *runner) categoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage the category tree",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category and print its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			c, err := rt.Categories.Create(ctx, args[0], optionalString(cmd, flagParent))
			if err != nil {
				return fail(err)
			}
			r.printf("%s\n", c.ID)
			return nil
		},
	}
	add.Flags().String(flagParent, "", "id of the parent category")

	rename := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			if err = rt.Categories.Rename(ctx, args[0], args[1]); err != nil {
				return fail(err)
			}
			r.success("category renamed")
			return nil
		},
	}

	move := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a category under another one, or to the top level without --parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			parent := optionalString(cmd, flagParent)
			if err = rt.Categories.Move(ctx, args[0], parent); err != nil {
				return fail(err)
			}
			r.success("category moved to %s", describeCategory(parent))
			return nil
		},
	}
	move.Flags().String(flagParent, "", "id of the new parent category")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category with its subcategories; its notes become uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			if err = rt.Categories.Delete(ctx, args[0]); err != nil {
				return fail(err)
			}
			r.success("category deleted")
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "Print the category tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			tree, err := rt.Categories.Tree(ctx)
			if err != nil {
				return fail(err)
			}
			r.printf("%s", tui.RenderTree(tree))
			return nil
		},
	}

	cmd.AddCommand(add, rename, move, rm, ls)
	return cmd
}

// describeCategory is used in confirmations that name a category.
func describeCategory(id *string) string {
	if id == nil {
		return "top level"
	}
	return fmt.Sprintf("category %s", *id)
}
