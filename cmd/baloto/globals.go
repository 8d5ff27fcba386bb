package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/jrojasbu/SW-BALOTO/internal/config"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
	"github.com/jrojasbu/SW-BALOTO/internal/render"
	"github.com/jrojasbu/SW-BALOTO/internal/store"
)

// Globals are flags shared by every command.
type Globals struct {
	Config      string `short:"c" default:"baloto.hcl" help:"Path to HCL configuration file"`
	LogLevel    string `short:"l" help:"Log level (overrides config)"`
	HistoryFile string `short:"f" help:"History file (overrides config)"`
	NoColor     bool   `help:"Disable colored output (overrides config)"`
}

// stdout is where command output goes. Replaced in tests.
var stdout io.Writer = os.Stdout

// env is the per-invocation state built from the globals.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
}

func (g *Globals) env() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Apply command line overrides
	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if g.HistoryFile != "" {
		cfg.Store.Path = g.HistoryFile
	}
	if g.NoColor {
		cfg.Output.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Output.NoColor {
		render.DisableColor()
	}

	return &env{cfg: cfg, logger: newLogger(cfg.Logging.Level), clock: quartz.NewReal()}, nil
}

func newLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

func (e *env) openStore() (*store.Store, error) {
	return store.Open(e.cfg.Store.Path, e.logger, e.clock)
}

// jsonOutput reports whether a command should print JSON.
func (e *env) jsonOutput(flag bool) bool {
	return flag || e.cfg.Output.Format == "json"
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func parseKind(s string) (draw.Kind, error) {
	kind, err := draw.ParseKind(s)
	if err != nil {
		return "", fmt.Errorf("%w (available: baloto, revancha, miloto)", err)
	}
	return kind, nil
}
