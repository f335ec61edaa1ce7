package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odgrip/internal/catalogue"
	"odgrip/internal/config"
	"odgrip/internal/dispatch"
	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
	"odgrip/internal/history"
	"odgrip/internal/selection"
	inputtypes "odgrip/internal/ui/input/types"
	"odgrip/internal/ui/views"
)

type fakeDispatcher struct {
	mu   sync.Mutex
	name string
	err  error
	sent []domain.Request
}

func (d *fakeDispatcher) Name() string { return d.name }

func (d *fakeDispatcher) Dispatch(_ context.Context, req domain.Request) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, req)
	return d.err
}

func (d *fakeDispatcher) requests() []domain.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Request(nil), d.sent...)
}

type harness struct {
	model  *Model
	bus    eventbus.EventBus
	sender *fakeDispatcher
	copier *fakeDispatcher
	hist   *history.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, selection.New(catalogue.Builtin()))
}

func newHarnessWith(t *testing.T, initial selection.State) *harness {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	sender := &fakeDispatcher{name: config.DispatchBrowser}
	copier := &fakeDispatcher{name: config.DispatchClipboard}
	hist := history.New(bus)
	t.Cleanup(hist.Close)

	m := NewModel(bus, config.DefaultConfig(), initial, dispatch.NewService(sender, bus), hist)
	m.copier = copier
	return &harness{model: m, bus: bus, sender: sender, copier: copier, hist: hist}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) key(t tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: t})
}

// drain runs cmd and any batched commands, feeding results back to the model
func (h *harness) drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, h.drain(c)...)
		}
		return out
	}
	h.model.Update(msg)
	return []tea.Msg{msg}
}

func TestSubmitDispatchesComposedURL(t *testing.T) {
	h := newHarness(t)

	h.typeText("1984")
	msgs := h.drain(h.key(tea.KeyEnter))

	require.Len(t, h.sender.requests(), 1)
	req := h.sender.requests()[0]
	assert.Equal(t, domain.BackendGoogle, req.Backend)
	assert.Contains(t, req.URL, "https://www.google.com/search?q=1984%20-inurl")

	require.Len(t, msgs, 1)
	assert.Equal(t, dispatchedMsg{req: req, via: config.DispatchBrowser}, msgs[0])
	assert.Equal(t, views.StatusSuccess, h.model.statusLevel)
	assert.Contains(t, h.model.status, "Google")
}

func TestFilePursuitScenario(t *testing.T) {
	h := newHarness(t)

	h.typeText("GTA V")
	h.key(tea.KeyTab)                                          // backend pane
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")}) // FilePursuit
	h.key(tea.KeyTab)                                          // type pane
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("6")}) // archive
	h.drain(h.key(tea.KeyEnter))

	require.Len(t, h.sender.requests(), 1)
	assert.Equal(t, "https://filepursuit.com/pursuit?q=GTA%20V&type=archive&sort=datedesc", h.sender.requests()[0].URL)
}

func TestEmptyQueryIsRejected(t *testing.T) {
	h := newHarness(t)
	rejected := make(chan eventbus.DomainEvent, 1)
	h.bus.Subscribe(eventbus.EventEmptyQueryRejected, func(e eventbus.DomainEvent) { rejected <- e })

	h.typeText("   ")
	cmd := h.key(tea.KeyEnter)

	assert.Empty(t, h.drain(cmd))
	assert.Empty(t, h.sender.requests())
	assert.Equal(t, views.StatusWarning, h.model.statusLevel)

	select {
	case e := <-rejected:
		assert.Equal(t, eventbus.EmptyQueryRejectedEvent{Backend: domain.BackendGoogle}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("EmptyQueryRejectedEvent not published")
	}
	require.Eventually(t, func() bool { return h.hist.Rejected() == 1 }, time.Second, 10*time.Millisecond)
	assert.Zero(t, h.hist.Len())
}

func TestDispatchFailureShowsError(t *testing.T) {
	h := newHarness(t)
	h.sender.err = errors.New("no display")

	h.typeText("dune")
	h.drain(h.key(tea.KeyEnter))

	assert.Equal(t, views.StatusError, h.model.statusLevel)
	assert.Contains(t, h.model.status, "no display")
}

func TestBackendChangeResetsCategory(t *testing.T) {
	h := newHarness(t)
	changed := make(chan eventbus.DomainEvent, 1)
	h.bus.Subscribe(eventbus.EventBackendChanged, func(e eventbus.DomainEvent) { changed <- e })

	h.key(tea.KeyShiftTab) // category pane
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.Equal(t, "Books", h.model.State().Category.Label)
	assert.Equal(t, "eg. 1984", h.model.inputHandler.TextInput().Placeholder)

	h.key(tea.KeyTab) // query
	h.key(tea.KeyTab) // backend
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	assert.Equal(t, domain.BackendStartpage, h.model.State().Backend)
	assert.True(t, h.model.State().Category.IsAny())
	assert.Equal(t, "Search anything", h.model.inputHandler.TextInput().Placeholder)

	select {
	case e := <-changed:
		assert.Equal(t, eventbus.BackendChangedEvent{From: domain.BackendGoogle, To: domain.BackendStartpage}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("BackendChangedEvent not published")
	}
}

func TestClearQueryKeepsSelections(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyShiftTab)
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	h.key(tea.KeyEsc)
	h.typeText("dune")
	h.key(tea.KeyCtrlU)

	assert.Empty(t, h.model.State().Query)
	assert.Equal(t, "TV/Movies", h.model.State().Category.Label)
}

func TestCopyURL(t *testing.T) {
	h := newHarness(t)

	assert.Nil(t, h.key(tea.KeyCtrlY))
	assert.Equal(t, views.StatusWarning, h.model.statusLevel)

	h.typeText("dune")
	h.drain(h.key(tea.KeyCtrlY))

	require.Len(t, h.copier.requests(), 1)
	assert.Empty(t, h.sender.requests())
	assert.Equal(t, "URL copied to clipboard", h.model.status)
}

func TestViewShowsPreview(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 200, Height: 40})

	assert.Contains(t, h.model.View(), "type a query")

	h.typeText("dune")
	view := h.model.View()
	assert.Contains(t, view, "https://www.google.com/search?q=dune")
	assert.Contains(t, view, "Category")
}

func TestViewSwapsCategoryForType(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 200, Height: 40})

	h.key(tea.KeyTab)
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})

	view := h.model.View()
	assert.Contains(t, view, "archive")
	assert.NotContains(t, view, "TV/Movies")
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.drain(h.key(tea.KeyCtrlC)), tea.Msg(tea.QuitMsg{}))

	// q types into the query pane but quits from a picker
	h.typeText("q")
	assert.Equal(t, "q", h.model.State().Query)
	h.key(tea.KeyTab)
	assert.Contains(t, h.drain(h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})), tea.Msg(tea.QuitMsg{}))
}

func TestOutOfRangeSelectionIsIgnored(t *testing.T) {
	h := newHarness(t)
	before := h.model.State()

	h.model.processAction(inputtypes.SelectOptionAction{Mode: inputtypes.ModeBackend, Index: 7})
	h.model.processAction(inputtypes.SelectOptionAction{Mode: inputtypes.ModeCategory, Index: -1})

	assert.Equal(t, before, h.model.State())
}

func TestLongQueryIsKeptWhole(t *testing.T) {
	long := strings.Repeat("a", 600)
	h := newHarnessWith(t, selection.New(catalogue.Builtin()).SetQueryText(long))

	h.typeText("b")
	assert.Equal(t, long+"b", h.model.State().Query)

	h.typeText(strings.Repeat("c", 600))
	assert.Len(t, h.model.State().Query, 1201)

	h.drain(h.key(tea.KeyEnter))
	require.Len(t, h.sender.requests(), 1)
	assert.Contains(t, h.sender.requests()[0].URL, long+"b"+strings.Repeat("c", 600))
}
