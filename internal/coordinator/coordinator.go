package coordinator

import (
	"context"

	"sshtint/internal/config"
	"sshtint/internal/errors"
	"sshtint/internal/logging"
	"sshtint/internal/resolver"
	"sshtint/internal/sink"
	"sshtint/internal/sshconfig"
)

// Trigger identifies what caused a pipeline run.
type Trigger int

const (
	TriggerStartup Trigger = iota
	TriggerFileChange
	TriggerRefresh
)

func (t Trigger) String() string {
	switch t {
	case TriggerStartup:
		return "startup"
	case TriggerFileChange:
		return "file-change"
	case TriggerRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithSettingsPatcher attaches a live workspace settings target. When set,
// each run applies the resolved color to it (or clears it).
func WithSettingsPatcher(p *sink.SettingsPatcher) Option {
	return func(c *Coordinator) {
		c.patcher = p
	}
}

// WithAuthority overrides the ambient session-identity probe. Used by
// tests and by the resolve command's --remote flag.
func WithAuthority(fn func() resolver.ActiveHostContext) Option {
	return func(c *Coordinator) {
		c.authority = fn
	}
}

// Coordinator owns the parse→resolve→build→apply pipeline and the state it
// needs to keep applied colors consistent with the config file. Runs are
// strictly serialized: triggers queue up and execute one at a time, so the
// mutable state needs no locking.
type Coordinator struct {
	settings  *config.Settings
	terminal  *sink.TerminalProfileSink
	editor    *sink.EditorSink
	patcher   *sink.SettingsPatcher
	authority func() resolver.ActiveHostContext

	// State owned exclusively by the run loop.
	current     sshconfig.HostColorMap
	lastApplied string // last color applied to the patcher, "" = none

	triggers chan Trigger
}

// New builds a Coordinator over the given settings.
func New(settings *config.Settings, opts ...Option) *Coordinator {
	paths := settings.Paths()
	c := &Coordinator{
		settings:  settings,
		terminal:  sink.NewTerminalProfileSink(paths),
		editor:    &sink.EditorSink{Dir: paths.WorkspacesDir, Marker: settings.AuthorityMarker},
		authority: func() resolver.ActiveHostContext {
			return resolver.FromEnv(settings.AuthorityMarker)
		},
		triggers: make(chan Trigger, 16),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh enqueues a user-triggered pipeline run. It never blocks; when the
// queue is full the pending runs already cover the request.
func (c *Coordinator) Refresh() {
	c.enqueue(TriggerRefresh)
}

func (c *Coordinator) enqueue(t Trigger) {
	select {
	case c.triggers <- t:
	default:
		logging.Debug("trigger queue full, coalescing", "trigger", t)
	}
}

// Run executes the startup run, starts the config watch, and then processes
// triggers until the context is cancelled. A failed run is reported and the
// loop continues; previously applied state is left alone.
func (c *Coordinator) Run(ctx context.Context) error {
	if err := c.RunOnce(TriggerStartup); err != nil {
		logging.Error("startup run failed", "error", err)
	}

	if err := c.watch(ctx); err != nil {
		return errors.WatchError(err)
	}

	for {
		select {
		case <-ctx.Done():
			logging.Debug("coordinator stopping")
			return ctx.Err()
		case t := <-c.triggers:
			if err := c.RunOnce(t); err != nil {
				logging.Error("pipeline run failed", "trigger", t, "error", err)
			}
		}
	}
}

// RunOnce executes one full pipeline pass: read and parse the config file,
// regenerate both sinks, resolve the active host, and apply or clear the
// editor payload. Absence outcomes (missing file, no active host, no color)
// complete the run silently.
func (c *Coordinator) RunOnce(trigger Trigger) error {
	paths := c.settings.Paths()

	hosts, err := sshconfig.ParseFile(paths.SSHConfig)
	if err != nil {
		return errors.SSHConfigError(paths.SSHConfig, err)
	}

	if c.current != nil && hosts.Equal(c.current) {
		logging.Debug("config unchanged", "trigger", trigger, "hosts", len(hosts))
	} else {
		logging.Info("loaded host colors", "trigger", trigger, "hosts", len(hosts))
	}
	c.current = hosts

	if _, err := c.terminal.Write(hosts); err != nil {
		return errors.SinkError("terminal", err)
	}
	if _, err := c.editor.WriteWorkspaces(hosts); err != nil {
		return errors.SinkError("editor", err)
	}

	return c.applyResolved(hosts)
}

// applyResolved keeps the live workspace settings in line with the resolved
// color. The coordinator remembers what it last applied so that "no color"
// fully clears a previous payload instead of leaving stale values.
func (c *Coordinator) applyResolved(hosts sshconfig.HostColorMap) error {
	if c.patcher == nil {
		return nil
	}

	res := resolver.Resolve(c.authority(), hosts)
	color := res.Color()

	switch {
	case color == "" && c.lastApplied == "":
		if res.Context.Remote {
			logging.Info("no color defined for host", "alias", res.Context.Alias)
		}
		return nil
	case color == "":
		if err := c.patcher.Clear(); err != nil {
			return errors.SinkError("editor", err)
		}
		logging.Info("cleared editor colors", "was", c.lastApplied)
		c.lastApplied = ""
		return nil
	case color == c.lastApplied:
		logging.Debug("color unchanged", "color", color)
		return nil
	default:
		if err := c.patcher.Apply(color); err != nil {
			return errors.SinkError("editor", err)
		}
		logging.Info("applied editor colors", "alias", res.Context.Alias, "color", color)
		c.lastApplied = color
		return nil
	}
}

// Current returns the host map from the latest completed parse.
func (c *Coordinator) Current() sshconfig.HostColorMap {
	return c.current
}
