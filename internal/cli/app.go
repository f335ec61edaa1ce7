package cli

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"odgrip/internal/config"
	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
	"odgrip/internal/selection"
)

// app holds what every command needs: configuration, the event bus and the log file
type app struct {
	cfg      *config.Config
	bus      eventbus.EventBus
	closeLog func()
}

// newApp loads the config and redirects the standard logger. Problems with
// the config are reported on stderr and the defaults are used instead.
func newApp(cmd *cobra.Command) *app {
	// Hold log output until we know where the log file is
	var early bytes.Buffer
	log.SetOutput(&early)

	bus := eventbus.New()
	cfg, err := config.NewConfigServiceAt(configPath, bus).Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "odgrip: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "odgrip: could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		closeLog = func() {}
	}
	_, _ = io.Copy(log.Writer(), &early)

	return &app{cfg: cfg, bus: bus, closeLog: closeLog}
}

func (a *app) Close() {
	a.bus.Close()
	a.closeLog()
}

// setupLogging points the standard logger at path. "-" or "" discards logs.
func setupLogging(path string) (func(), error) {
	if path == "" || path == "-" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		_ = logFile.Close()
	}, nil
}

// buildState applies config defaults, then flags, then the query words
func (a *app) buildState(args []string) (selection.State, error) {
	cat, err := a.cfg.Catalogue()
	if err != nil {
		return selection.State{}, err
	}

	backend, err := a.cfg.Backend()
	if err != nil {
		return selection.State{}, err
	}
	if backendFlag != "" {
		if backend, err = domain.ParseBackend(backendFlag); err != nil {
			return selection.State{}, fmt.Errorf("%w: %w", selection.ErrInvalidSelection, err)
		}
	}

	state, err := selection.New(cat).SetBackend(backend)
	if err != nil {
		return selection.State{}, err
	}

	if categoryFlag != "" {
		c, ok := cat.ByLabel(categoryFlag)
		if !ok {
			return selection.State{}, fmt.Errorf("%w: unknown category %q", selection.ErrInvalidSelection, categoryFlag)
		}
		if state, err = state.SetCategory(c); err != nil {
			return selection.State{}, err
		}
	}

	if typeFlag != "" {
		t, err := domain.ParseSubType(typeFlag)
		if err != nil {
			return selection.State{}, fmt.Errorf("%w: %w", selection.ErrInvalidSelection, err)
		}
		if state, err = state.SetSubType(t); err != nil {
			return selection.State{}, err
		}
	}

	return state.SetQueryText(strings.Join(args, " ")), nil
}
