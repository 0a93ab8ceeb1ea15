// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the notebook command line on cobra.
//
// Commands are thin: they parse arguments, ask for passwords, call the
// category and note services and render the result with the tui package.
// The runtime (config, logger, storage, services) is opened lazily by the
// first command that needs it, so `version` and `help` never touch the
// database.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notebook/internal/app"
	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/internal/service"
	"github.com/MKhiriev/go-notebook/internal/tui"
	"github.com/MKhiriev/go-notebook/internal/workers"
	"github.com/MKhiriev/go-notebook/models"
)

// LoggerRole is the "role" field of every CLI log entry.
const LoggerRole = "notebook-cli"

// Editor edits plaintext interactively. saved is false when the user quit
// without saving.
type Editor interface {
	Edit(ctx context.Context, title, initial string) (content string, saved bool, err error)
}

// Runtime is what commands work against once the notebook is open.
type Runtime struct {
	Categories service.CategoryService
	Notes      service.NoteService
	// Workers is optional; when set it runs during long interactive commands.
	Workers *workers.Workers
	// Close releases the storage. Optional.
	Close func() error
}

// Connector opens the notebook described by cfg.
type Connector func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error)

// Options wires the command line to its environment. Zero fields fall back
// to the process defaults, except Connect, which is required by every
// command that touches the notebook.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Passwords PasswordSource
	Editor    Editor
	Clipboard func(text string) error
	Connect   Connector
	BuildInfo models.AppBuildInfo
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Passwords == nil {
		o.Passwords = NewTerminalPasswords(os.Stdin, o.Err)
	}
	if o.Editor == nil {
		o.Editor = tui.NewNoteEditor()
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.WriteAll
	}
	return o
}

// ErrNotConfigured is returned when a command needs the notebook but no
// Connector was supplied.
var ErrNotConfigured = errors.New("notebook runtime is not configured")

// runner holds the state shared by all commands of one invocation.
type runner struct {
	opts  Options
	flags config.Flags

	cfg       *config.StructuredConfig
	log       *logger.Logger
	logCloser io.Closer
	rt        *Runtime
}

// Execute runs the command line with args (without the program name) and
// returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	r := &runner{opts: opts.withDefaults(), log: logger.Nop()}

	root := r.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	r.close()

	if err == nil {
		return 0
	}
	r.report(err)
	return 1
}

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "notebook",
		Short: "Password-protected notes in a local SQLite notebook",
		Long: `notebook keeps notes in a local SQLite file. Every note is sealed with
its own password (Argon2id + AES-256-GCM); nothing readable is stored.

The password is taken from NOTEBOOK_PASSWORD when set, otherwise it is
prompted for on the terminal.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	r.flags.Register(root.PersistentFlags())
	root.SetIn(r.opts.In)
	root.SetOut(r.opts.Out)
	root.SetErr(r.opts.Err)

	root.AddCommand(
		r.categoryCommand(),
		r.noteCommand(),
		r.gcCommand(),
		r.versionCommand(),
	)
	return root
}

// runtime opens the notebook on first use and returns a context carrying
// the CLI logger.
func (r *runner) runtime(cmd *cobra.Command) (context.Context, *Runtime, error) {
	if r.rt != nil {
		return r.log.WithContext(cmd.Context()), r.rt, nil
	}

	cfg, err := config.GetStructuredConfig(r.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logger.NewCLILogger(LoggerRole, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	r.cfg, r.log, r.logCloser = cfg, log, closer

	if r.opts.Connect == nil {
		return nil, nil, ErrNotConfigured
	}

	ctx := log.WithContext(cmd.Context())
	rt, err := r.opts.Connect(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open notebook: %w", err)
	}
	r.rt = rt

	log.Debug().
		Str("func", "runner.runtime").
		Str("command", cmd.CommandPath()).
		Msg("notebook opened")
	return ctx, rt, nil
}

func (r *runner) close() {
	if r.rt != nil && r.rt.Close != nil {
		if err := r.rt.Close(); err != nil {
			r.log.Err(err).Str("func", "runner.close").Msg("failed to close notebook")
		}
	}
	if r.logCloser != nil {
		_ = r.logCloser.Close()
	}
}

// report prints err for the user. Service failures are shown through
// app.UserMessage with the details going to the log; anything else (usage,
// config, terminal) is printed as is.
func (r *runner) report(err error) {
	var se *serviceError
	if errors.As(err, &se) {
		r.log.Err(se.err).Str("func", "runner.report").Msg("command failed")
		fmt.Fprint(r.opts.Err, tui.RenderError(app.UserMessage(se.err)))
		return
	}
	fmt.Fprint(r.opts.Err, tui.RenderError(err.Error()))
}

func (r *runner) printf(format string, args ...any) {
	fmt.Fprintf(r.opts.Out, format, args...)
}

func (r *runner) success(format string, args ...any) {
	fmt.Fprint(r.opts.Out, tui.RenderSuccess(fmt.Sprintf(format, args...)))
}

// optionalString returns the value of a string flag, or nil when the flag
// was not given on the command line.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
