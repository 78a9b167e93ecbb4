package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/anthroping/anthroping/internal/request"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// DefaultVoice is the voice used for spoken notifications.
const DefaultVoice = "Samantha"

// DispatchError reports that a notification surface could not be invoked.
type DispatchError struct {
	Surface string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s dispatch failed: %v", e.Surface, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Dispatcher shows a resolved request on the matching surface.
// It holds no state between dispatches.
type Dispatcher struct {
	executor Executor
	sounds   *SoundCatalog
	voice    string
	out      io.Writer
	logger   *log.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where summaries and sound listings are printed.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.out = w }
}

// WithLogger sets the logger for best-effort failures.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithVoice sets the voice for spoken notifications.
func WithVoice(voice string) Option {
	return func(d *Dispatcher) {
		if voice != "" {
			d.voice = voice
		}
	}
}

// NewDispatcher creates a dispatcher that runs its surfaces through executor.
func NewDispatcher(executor Executor, sounds *SoundCatalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		executor: executor,
		sounds:   sounds,
		voice:    DefaultVoice,
		out:      os.Stdout,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch shows req as a notification or an alert dialog, depending on its mode.
func (d *Dispatcher) Dispatch(ctx context.Context, req *request.Request) error {
	switch req.Mode {
	case request.ModeNotify:
		if err := d.notify(ctx, req); err != nil {
			return err
		}
		d.speak(req)
		d.summary("Notification sent", req.Config.Title)
	case request.ModeAlert:
		if err := d.alert(req); err != nil {
			return err
		}
		d.speak(req)
		d.summary("Alert shown", req.Config.Title)
	case request.ModeSounds:
		return d.ListSounds()
	default:
		return fmt.Errorf("cannot dispatch %s request", req.Mode)
	}
	return nil
}

func (d *Dispatcher) notify(ctx context.Context, req *request.Request) error {
	script, err := NotificationScript(req.Config)
	if err != nil {
		return &DispatchError{Surface: "notification", Err: err}
	}

	d.logger.Debug("posting notification", "event", req.Event, "sound", req.Config.Sound)
	if err := d.executor.Run(ctx, "osascript", "-e", script); err != nil {
		return &DispatchError{Surface: "notification", Err: err}
	}
	return nil
}

func (d *Dispatcher) alert(req *request.Request) error {
	d.playSound(req.Config.Sound)

	project := ProjectName(req.ProjectPath)
	script, err := DialogScript(req.Config, project, req.App, req.Timeout)
	if err != nil {
		return &DispatchError{Surface: "dialog", Err: err}
	}

	d.logger.Debug("launching dialog", "event", req.Event, "project", project, "app", req.App, "timeout", req.Timeout)
	// The dialog's answer is consumed by its own script; nothing comes back here.
	if err := d.executor.Start("osascript", "-e", script); err != nil {
		return &DispatchError{Surface: "dialog", Err: err}
	}
	return nil
}

// playSound starts the named system sound detached. Unknown sounds are skipped.
func (d *Dispatcher) playSound(name string) {
	path, ok := d.sounds.Path(name)
	if !ok {
		d.logger.Debug("sound not found, skipping", "sound", name, "dir", d.sounds.Dir)
		return
	}
	if err := d.executor.Start("afplay", path); err != nil {
		d.logger.Debug("sound playback failed", "sound", name, "err", err)
	}
}

// speak reads the message aloud, detached and best effort.
func (d *Dispatcher) speak(req *request.Request) {
	if !req.Say {
		return
	}
	// The message is user text: "--" keeps a leading dash from being read as an option.
	if err := d.executor.Start("say", "-v", d.voice, "--", req.Config.Message); err != nil {
		d.logger.Debug("speech failed", "voice", d.voice, "err", err)
	}
}

func (d *Dispatcher) summary(action, title string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(d.out, "🔔 %s: %s\n", action, bold(title))
}

// ListSounds prints every sound in the catalog, one per line.
func (d *Dispatcher) ListSounds() error {
	names, err := d.sounds.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(d.out, name)
	}
	return nil
}
