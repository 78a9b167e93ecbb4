// Package cli provides the Cobra-based command line for anthroping.
//
// The root command owns the raw token stream: flags may appear anywhere and are
// resolved by the request package, so Cobra's own flag parsing is disabled.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/anthroping/anthroping/internal/config"
	clierrors "github.com/anthroping/anthroping/internal/errors"
	"github.com/anthroping/anthroping/internal/event"
	"github.com/anthroping/anthroping/internal/notify"
	"github.com/anthroping/anthroping/internal/request"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the anthroping command. Every notification surface runs through
// executor.
func NewRootCmd(executor notify.Executor) *cobra.Command {
	return &cobra.Command{
		Use:   "anthroping <event> [message...] [flags]",
		Short: "macOS notifications for Claude Code",
		Long: `anthroping maps Claude Code lifecycle events to macOS notifications,
with an optional always-visible alert dialog that can jump back to the project window.`,
		Example: `  anthroping done
  anthroping input --alert --project "$PWD"
  anthroping --sounds`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureColor()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), executor, args)
		},
	}
}

// Execute runs the root command against the real system and returns the exit code.
func Execute(ctx context.Context) int {
	return ExitCode(NewRootCmd(notify.NewExecutor()).ExecuteContext(ctx))
}

func run(ctx context.Context, out, errOut io.Writer, executor notify.Executor, args []string) error {
	if len(args) == 0 {
		printHelp(out)
		return NewExitError(ExitFailure)
	}

	globals, tokens := request.ExtractGlobals(args)

	// Help and version must work even when the configuration is broken.
	if mode, ok := request.EarlyMode(tokens); ok {
		if mode == request.ModeVersion {
			printVersion(out)
		} else {
			printHelp(out)
		}
		return nil
	}

	logger := newLogger(errOut, globals.Debug)

	cfg, err := config.Load(globals.ConfigPath)
	if err != nil {
		clierrors.FprintError(errOut, clierrors.ConfigLoadFailed(globals.ConfigPath, err))
		return NewExitError(ExitFailure)
	}
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	req, err := request.Parse(tokens, request.Defaults{App: cfg.App, Timeout: cfg.Timeout})
	if err != nil {
		return usageError(out, err)
	}
	logger.Debug("resolved request", "mode", req.Mode, "event", req.Event, "title", req.Config.Title)

	d := notify.NewDispatcher(executor,
		notify.NewSoundCatalog(cfg.SoundsDir, cfg.SoundExt),
		notify.WithOutput(out),
		notify.WithLogger(logger),
		notify.WithVoice(cfg.Voice),
	)

	if req.Mode == request.ModeSounds {
		if err := d.ListSounds(); err != nil {
			clierrors.FprintError(errOut, clierrors.SoundsUnavailable(err))
			return NewExitError(ExitFailure)
		}
		return nil
	}

	if err := d.Dispatch(ctx, req); err != nil {
		if errors.Is(err, notify.ErrUnsupportedPlatform) {
			clierrors.FprintError(errOut, clierrors.UnsupportedPlatform(notify.Platform()))
		} else {
			clierrors.FprintError(errOut, clierrors.DispatchFailed(err))
		}
		return NewExitError(ExitFailure)
	}
	return nil
}

// usageError prints a resolver error on stdout, next to the help it refers to.
func usageError(out io.Writer, err error) error {
	var (
		unknown *request.UnknownEventError
		missing *request.MissingEventError
		timeout *request.InvalidTimeoutError
	)
	switch {
	case errors.As(err, &unknown):
		clierrors.FprintError(out, clierrors.UnknownEvent(unknown.Token, unknown.Valid))
	case errors.As(err, &missing):
		printHelp(out)
		clierrors.FprintError(out, clierrors.MissingEvent(event.Names()))
	case errors.As(err, &timeout):
		clierrors.FprintError(out, clierrors.InvalidTimeout(timeout.Value, request.MinTimeout, request.MaxTimeout))
	default:
		clierrors.FprintError(out, clierrors.Wrap(err, clierrors.Argument))
	}
	return NewExitError(ExitFailure)
}
