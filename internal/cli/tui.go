package cli

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"odgrip/internal/dispatch"
	"odgrip/internal/history"
	"odgrip/internal/ui"
)

// lockedBuffer collects printed URLs while the alternate screen is active
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func runTUI(cmd *cobra.Command, args []string) error {
	a := newApp(cmd)
	defer a.Close()

	state, err := a.buildState(args)
	if err != nil {
		return err
	}

	// Print dispatch can't write over the form; flush after exit
	printed := &lockedBuffer{}
	d, err := dispatch.New(a.cfg, printed)
	if err != nil {
		return err
	}

	hist := history.New(a.bus)
	defer hist.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(a.bus, a.cfg, state, dispatch.NewService(d, a.bus), hist)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	_, err = fmt.Fprint(cmd.OutOrStdout(), printed.String())
	return err
}
