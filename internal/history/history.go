// Package history keeps the searches dispatched during the current session.
// Nothing is written to disk; the record ends with the process.
package history

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
)

// Entry is one dispatch attempt
type Entry struct {
	At      time.Time
	Request domain.Request
	Via     string
	Err     error
}

// Failed reports whether the dispatch did not go through
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Store records dispatch outcomes published on the bus
type Store struct {
	mu       sync.RWMutex
	entries  []Entry
	rejected int
	unsubs   []func()
}

// New creates a store subscribed to dispatch events on bus
func New(bus eventbus.EventBus) *Store {
	s := &Store{}
	if bus == nil {
		return s
	}
	s.unsubs = append(s.unsubs,
		bus.Subscribe(eventbus.EventSearchDispatched, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SearchDispatchedEvent); ok {
				s.Add(Entry{At: ev.At, Request: ev.Request, Via: ev.Via})
			}
		}),
		bus.Subscribe(eventbus.EventDispatchFailed, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.DispatchFailedEvent); ok {
				s.Add(Entry{At: ev.At, Request: ev.Request, Via: ev.Via, Err: ev.Err})
			}
		}),
		bus.Subscribe(eventbus.EventEmptyQueryRejected, func(eventbus.DomainEvent) {
			s.Reject()
		}),
	)
	return s
}

// Add appends an entry
func (s *Store) Add(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// Entries returns a copy of all entries, oldest first
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reject counts a submit that was withheld for lack of query text
func (s *Store) Reject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected++
}

// Rejected returns the number of empty submits seen
func (s *Store) Rejected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rejected
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops listening for new dispatches
func (s *Store) Close() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

// WriteTo renders the history newest first, one block per entry
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	entries := s.Entries()
	rejected := s.Rejected()

	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("No searches dispatched this session.\n")
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		status := "sent via " + e.Via
		if e.Failed() {
			status = fmt.Sprintf("failed via %s: %v", e.Via, e.Err)
		}
		fmt.Fprintf(&b, "%s  %-11s  %s\n", e.At.Format("15:04:05"), e.Request.Backend, status)
		fmt.Fprintf(&b, "    %s\n", e.Request.URL)
	}
	if rejected > 0 {
		fmt.Fprintf(&b, "\n%d empty submits ignored.\n", rejected)
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
