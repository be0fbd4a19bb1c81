package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/tint"
	"github.com/routelab/routesim/state"
	slogmulti "github.com/samber/slog-multi"
)

// RunConfig is one complete batch run: initial links, the messages to trace at
// every stable state, and the change sequence, written as text to Out.
type RunConfig struct {
	Solver   Solver
	Links    []state.Link
	Messages []state.Message
	Changes  []state.Change
	Out      io.Writer
	Log      *slog.Logger
}

// Run executes the pipeline: initial solve, trace every message, then for each
// change in order re-solve and re-trace, emitting tables and traces per stable
// state. A failure in any stage stops the run.
func Run(cfg RunConfig) error {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	extra := make([]state.NodeId, 0, len(cfg.Messages)*2)
	for _, m := range cfg.Messages {
		extra = append(extra, m.From, m.To)
	}

	e := NewEngine(cfg.Solver, cfg.Links, extra, log)
	log.Info("initial solve complete", "solver", cfg.Solver.Name(), "nodes", len(e.Nodes()), "links", len(cfg.Links))

	if err := writeStableState(cfg.Out, e, cfg.Messages); err != nil {
		return err
	}

	for i, c := range cfg.Changes {
		if err := e.ApplyChange(c); err != nil {
			return fmt.Errorf("change %d: %w", i+1, err)
		}
		log.Info("change applied", "change", i+1, "a", int(c.A), "b", int(c.B), "cost", c.Cost)
		if err := writeStableState(cfg.Out, e, cfg.Messages); err != nil {
			return err
		}
	}
	return nil
}

func writeStableState(w io.Writer, e *Engine, messages []state.Message) error {
	if err := WriteTables(w, e); err != nil {
		return err
	}
	traces, err := e.TraceAll(messages)
	if err != nil {
		return err
	}
	return WriteTraces(w, traces, messages)
}

// NewLogger builds the run logger: a tint handler on stderr without
// timestamps, fanned out to a plain text handler on logPath when set.
func NewLogger(prefix string, verbose bool, logPath string) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: prefix,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}),
	}

	if logPath != "" {
		if err := os.MkdirAll(path.Dir(logPath), 0700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}
