// Package dispatch hands composed search URLs to whatever displays them.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/shlex"

	"odgrip/internal/config"
	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
)

var ErrUnsupportedPlatform = errors.New("no browser opener for this platform")

// Dispatcher delivers a request to an external viewer. It does not wait for
// the viewer to load the page.
type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.Request) error
	Name() string
}

// New builds the dispatcher selected by cfg. Print output goes to out.
func New(cfg *config.Config, out io.Writer) (Dispatcher, error) {
	switch cfg.Dispatch {
	case config.DispatchBrowser:
		return NewBrowserDispatcher(cfg.BrowserCommand), nil
	case config.DispatchClipboard:
		return NewClipboardDispatcher(), nil
	case config.DispatchPrint:
		return NewPrintDispatcher(out), nil
	default:
		return nil, fmt.Errorf("%w: dispatch %q", config.ErrInvalidConfig, cfg.Dispatch)
	}
}

// BrowserDispatcher opens the URL with the desktop's default browser
type BrowserDispatcher struct {
	command string
	goos    string
	start   func(name string, args ...string) error
}

// NewBrowserDispatcher creates a browser dispatcher. A non-empty command
// replaces the platform opener; the URL is appended as the last argument.
func NewBrowserDispatcher(command string) *BrowserDispatcher {
	return &BrowserDispatcher{
		command: command,
		goos:    runtime.GOOS,
		start:   startDetached,
	}
}

func (d *BrowserDispatcher) Name() string { return config.DispatchBrowser }

func (d *BrowserDispatcher) Dispatch(ctx context.Context, req domain.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args, err := openCommand(d.goos, d.command, req.URL)
	if err != nil {
		return err
	}
	if err := d.start(name, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// openCommand returns the program and arguments that open url
func openCommand(goos, command, url string) (string, []string, error) {
	if strings.TrimSpace(command) != "" {
		parts, err := shlex.Split(command)
		if err != nil {
			return "", nil, fmt.Errorf("invalid browser_command %q: %w", command, err)
		}
		if len(parts) == 0 {
			return "", nil, fmt.Errorf("invalid browser_command %q", command)
		}
		return parts[0], append(parts[1:], url), nil
	}

	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// startDetached launches the opener without waiting for the browser
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("%s exited: %v", name, err)
		}
	}()
	return nil
}

// ClipboardDispatcher copies the URL to the system clipboard
type ClipboardDispatcher struct {
	write func(string) error
}

func NewClipboardDispatcher() *ClipboardDispatcher {
	return &ClipboardDispatcher{write: clipboard.WriteAll}
}

func (d *ClipboardDispatcher) Name() string { return config.DispatchClipboard }

func (d *ClipboardDispatcher) Dispatch(ctx context.Context, req domain.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return errors.New("clipboard is not available on this system")
	}
	if err := d.write(req.URL); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// PrintDispatcher writes one URL per line to a writer
type PrintDispatcher struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrintDispatcher(out io.Writer) *PrintDispatcher {
	return &PrintDispatcher{out: out}
}

func (d *PrintDispatcher) Name() string { return config.DispatchPrint }

func (d *PrintDispatcher) Dispatch(ctx context.Context, req domain.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := fmt.Fprintln(d.out, req.URL)
	return err
}

// Service dispatches requests and reports the outcome on the event bus
type Service struct {
	dispatcher Dispatcher
	bus        eventbus.EventBus
	now        func() time.Time
}

func NewService(d Dispatcher, bus eventbus.EventBus) *Service {
	return &Service{dispatcher: d, bus: bus, now: time.Now}
}

// Via names the dispatcher in use
func (s *Service) Via() string {
	return s.dispatcher.Name()
}

// Send dispatches req. Failures are published and returned, never retried.
func (s *Service) Send(ctx context.Context, req domain.Request) error {
	err := s.dispatcher.Dispatch(ctx, req)
	if err != nil {
		log.Printf("Dispatch via %s failed for %s: %v", s.dispatcher.Name(), req.URL, err)
		if s.bus != nil {
			s.bus.Publish(eventbus.DispatchFailedEvent{Request: req, Via: s.dispatcher.Name(), Err: err, At: s.now()})
		}
		return err
	}

	log.Printf("Dispatched %s via %s", req.URL, s.dispatcher.Name())
	if s.bus != nil {
		s.bus.Publish(eventbus.SearchDispatchedEvent{Request: req, Via: s.dispatcher.Name(), At: s.now()})
	}
	return nil
}
