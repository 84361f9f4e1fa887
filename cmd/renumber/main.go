// Command renumber reformats a pasted, loosely numbered list into a
// cleanly renumbered one.
//
// Usage:
//
//	renumber                  # paste the list, finish with a blank line
//	pbpaste | renumber        # read a piped list
//	renumber -f steps.html    # read a text, HTML or image file
//	renumber --dialog         # edit the list in a full-screen dialog
//	renumber serve            # expose POST /v1/renumber over HTTP
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/renumber"
	"github.com/tsawler/renumber/config"
	"github.com/tsawler/renumber/internal/logging"
	"github.com/tsawler/renumber/render"
	"github.com/tsawler/renumber/sequence"
)

// Exit codes.
const (
	exitOK          = 0
	exitTooFewLines = 1
	exitAnalysis    = 2
	exitError       = 3
)

// promptText is shown before reading a list from a terminal.
const promptText = "Paste the original sequence text here: "

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// app carries the streams, flags and per-run state of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Flags
	file       string
	dialog     bool
	copy       bool
	lang       string
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return a.exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "renumber",
		Short: "Renumber a pasted list",
		Long: `renumber reads a loosely numbered list, separates an introductory first
line from the list elements and prints the elements renumbered from 1.

Without flags it prompts for the list when run in a terminal (finish with
a blank line or Ctrl+C) and reads standard input to the end otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renumber(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.configPath, "config", "", "Config file (default: renumber.yaml in ./config, . or ~/.config/renumber)")

	f := root.Flags()
	f.StringVarP(&a.file, "file", "f", "", "Read the list from a text, HTML or image file")
	f.BoolVar(&a.dialog, "dialog", false, "Edit the list in a full-screen dialog")
	f.BoolVar(&a.copy, "copy", false, "Copy the result to the clipboard")
	f.StringVar(&a.lang, "lang", "", "OCR language(s) for image input, e.g. eng+chi_sim")
	root.MarkFlagsMutuallyExclusive("file", "dialog")

	root.AddCommand(newServeCmd(a))
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.Config{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Writer:       a.stderr,
	}
	if a.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	return nil
}

func (a *app) renumber(ctx context.Context) error {
	if a.dialog {
		return a.runDialog(ctx)
	}

	var p *renumber.Processor
	interactive := false
	switch {
	case a.file != "":
		a.logger.Debug("reading file", zap.String("path", a.file))
		p = renumber.Open(a.file)
	case isTerminal(a.stdin):
		block, err := readPrompt(ctx, a.stdin, a.stdout, promptText)
		if err != nil {
			return err
		}
		p = renumber.FromText(block)
		interactive = true
	default:
		p = renumber.FromReader(a.stdin)
	}

	lang := a.cfg.OCR.Language
	if a.lang != "" {
		lang = a.lang
	}

	out, warnings, err := p.Language(lang).Text()
	logging.Warnings(a.logger, warnings)
	if err != nil {
		return err
	}

	if interactive {
		fmt.Fprintln(a.stdout)
	}
	fmt.Fprintln(a.stdout, out)
	a.copyResult(out)
	return nil
}

// copyResult puts out on the clipboard when --copy or output.copy asks
// for it. A clipboard failure is logged, not returned.
func (a *app) copyResult(out string) {
	if !a.copy && !a.cfg.Output.Copy {
		return
	}
	if err := clipboardWriteAll(out); err != nil {
		a.logger.Warn("failed to copy result to clipboard", zap.Error(err))
		return
	}
	a.logger.Debug("copied result to clipboard")
}

// exitCode reports err on stderr and maps it to an exit code.
func (a *app) exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, renumber.ErrEmptyInput):
		return exitOK
	case errors.Is(err, sequence.ErrTooFewLines):
		fmt.Fprintf(a.stderr, "renumber: %v\n", err)
		return exitTooFewLines
	case errors.Is(err, render.ErrAnalysisFailed), errors.Is(err, sequence.ErrUnrecognizedPattern):
		fmt.Fprintf(a.stderr, "renumber: %v\n", render.ErrAnalysisFailed)
		return exitAnalysis
	default:
		fmt.Fprintf(a.stderr, "renumber: %v\n", err)
		return exitError
	}
}
