// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/internal/tui"
	"github.com/MKhiriev/go-notebook/models"
)

const (
	flagCategory      = "category"
	flagUncategorized = "uncategorized"
	flagFile          = "file"
	flagTitle         = "title"
	flagCopy          = "copy"

	passwordPrompt = "Password: "
)

func (r *runner) noteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Create, seal, open and organise notes",
	}

	cmd.AddCommand(
		r.noteNewCommand(),
		r.noteSaveCommand(),
		r.noteOpenCommand(),
		r.noteEditCommand(),
		r.noteListCommand(),
		r.noteMoveCommand(),
		r.noteRemoveCommand(),
	)
	return cmd
}

func (r *runner) noteNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty note and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			note, err := rt.Notes.Create(ctx, optionalString(cmd, flagCategory))
			if err != nil {
				return fail(err)
			}
			r.printf("%s\n", note.ID)
			return nil
		},
	}
	cmd.Flags().String(flagCategory, "", "id of the category to create the note in")
	return cmd
}

func (r *runner) noteSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <id>",
		Short: "Seal content into a note, replacing what it held",
		Long: `Reads the note content from --file, or from stdin when no file is given,
and seals it with a password. The first save of a note asks for the password
twice; later saves may use a different password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}

			content, err := r.readContent(cmd)
			if err != nil {
				return err
			}

			note, err := rt.Notes.Get(ctx, args[0])
			if err != nil {
				return fail(err)
			}

			password, err := r.passwordFor(note)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString(flagTitle)
			saved, err := rt.Notes.Save(ctx, models.NoteDraft{ID: note.ID, Content: content, Title: title}, password)
			if err != nil {
				return fail(err)
			}
			r.success("saved %q", saved.Title)
			return nil
		},
	}
	cmd.Flags().StringP(flagFile, "f", "", "read the content from this file instead of stdin")
	cmd.Flags().String(flagTitle, "", "explicit title; derived from the first line when empty")
	return cmd
}

func (r *runner) noteOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Unseal a note and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}

			plaintext, err := r.openNote(ctx, rt, args[0])
			if err != nil {
				return err
			}

			if toClipboard, _ := cmd.Flags().GetBool(flagCopy); toClipboard {
				if err = r.opts.Clipboard(plaintext); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				r.success("copied to clipboard")
				return nil
			}

			r.printf("%s", plaintext)
			if !strings.HasSuffix(plaintext, "\n") {
				r.printf("\n")
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagCopy, false, "copy the content to the clipboard instead of printing it")
	return cmd
}

func (r *runner) noteEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note in a full-screen editor",
		Long: `Unseals the note, opens it in the editor and seals the result with the
same password on ctrl+s. An empty note asks for a new password instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			log := logger.FromContext(ctx)

			note, err := rt.Notes.Get(ctx, args[0])
			if err != nil {
				return fail(err)
			}

			var password, initial string
			if !note.IsPlaceholder() {
				if password, err = r.opts.Passwords.Password(passwordPrompt); err != nil {
					return err
				}
				if initial, err = rt.Notes.Open(ctx, note.ID, password); err != nil {
					return fail(err)
				}
			}

			// the janitor would purge the placeholder being edited
			if rt.Workers != nil && !note.IsPlaceholder() {
				rt.Workers.Start(ctx)
				defer rt.Workers.Stop()
			}

			content, saved, err := r.opts.Editor.Edit(ctx, note.Title, initial)
			if err != nil {
				return err
			}
			if !saved || content == initial {
				log.Debug().
					Str("func", "noteEditCommand").
					Str("note_id", note.ID).
					Msg("editor closed without changes")
				r.success("no changes")
				return nil
			}

			if note.IsPlaceholder() {
				if password, err = r.opts.Passwords.NewPassword(); err != nil {
					return err
				}
			}

			updated, err := rt.Notes.Save(ctx, models.NoteDraft{ID: note.ID, Content: content}, password)
			if err != nil {
				return fail(err)
			}
			r.success("saved %q", updated.Title)
			return nil
		},
	}
}

func (r *runner) noteListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}

			uncategorized, _ := cmd.Flags().GetBool(flagUncategorized)
			notes, err := rt.Notes.List(ctx, models.NoteFilter{
				CategoryID:    optionalString(cmd, flagCategory),
				Uncategorized: uncategorized,
			})
			if err != nil {
				return fail(err)
			}
			r.printf("%s", tui.RenderNotes(notes))
			return nil
		},
	}
	cmd.Flags().String(flagCategory, "", "list only the notes of this category")
	cmd.Flags().Bool(flagUncategorized, false, "list only notes without a category")
	cmd.MarkFlagsMutuallyExclusive(flagCategory, flagUncategorized)
	return cmd
}

func (r *runner) noteMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a note to a category, or out of any category without --category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			category := optionalString(cmd, flagCategory)
			if err = rt.Notes.Move(ctx, args[0], category); err != nil {
				return fail(err)
			}
			r.success("note moved to %s", describeCategory(category))
			return nil
		},
	}
	cmd.Flags().String(flagCategory, "", "id of the target category")
	return cmd
}

func (r *runner) noteRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rt, err := r.runtime(cmd)
			if err != nil {
				return err
			}
			if err = rt.Notes.Delete(ctx, args[0]); err != nil {
				return fail(err)
			}
			r.success("note deleted")
			return nil
		},
	}
}

// readContent returns the note content from --file or stdin.
func (r *runner) readContent(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString(flagFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read content: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.opts.In)
	if err != nil {
		return "", fmt.Errorf("read content from stdin: %w", err)
	}
	return string(data), nil
}

// passwordFor asks for a confirmed password on a note's first save and a
// single one afterwards.
func (r *runner) passwordFor(note models.Note) (string, error) {
	if note.IsPlaceholder() {
		return r.opts.Passwords.NewPassword()
	}
	return r.opts.Passwords.Password(passwordPrompt)
}

// openNote unseals a note. An empty note fails before any prompt.
func (r *runner) openNote(ctx context.Context, rt *Runtime, id string) (string, error) {
	note, err := rt.Notes.Get(ctx, id)
	if err != nil {
		return "", fail(err)
	}
	if note.IsPlaceholder() {
		return "", fail(fmt.Errorf("open note: %w", crypto.ErrEmptyRecord))
	}

	password, err := r.opts.Passwords.Password(passwordPrompt)
	if err != nil {
		return "", err
	}

	plaintext, err := rt.Notes.Open(ctx, id, password)
	if err != nil {
		return "", fail(err)
	}
	return plaintext, nil
}
