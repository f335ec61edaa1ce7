// Package selection holds what the user has picked for the next search.
//
// State is a value: every setter returns the updated State and leaves the
// receiver untouched, so the reset performed by SetBackend is visible at
// the call site.
package selection

import (
	"errors"
	"fmt"

	"odgrip/internal/catalogue"
	"odgrip/internal/domain"
)

var ErrInvalidSelection = errors.New("invalid selection")

// State is the current query text and the selections that shape it
type State struct {
	Query    string
	Category domain.Category
	Backend  domain.Backend
	SubType  domain.SubType

	catalogue *catalogue.Catalogue
}

// New returns the initial state: empty query, default category, first backend and type
func New(cat *catalogue.Catalogue) State {
	return State{
		Category:  cat.Default(),
		Backend:   domain.Backends()[0],
		SubType:   domain.SubTypes()[0],
		catalogue: cat,
	}
}

// Catalogue returns the catalogue categories are validated against
func (s State) Catalogue() *catalogue.Catalogue {
	return s.catalogue
}

// SetQueryText replaces the query verbatim
func (s State) SetQueryText(text string) State {
	s.Query = text
	return s
}

// ClearQuery empties the query and keeps every other selection
func (s State) ClearQuery() State {
	s.Query = ""
	return s
}

// SetCategory selects c, which must be a member of the catalogue
func (s State) SetCategory(c domain.Category) (State, error) {
	if !s.catalogue.Contains(c) {
		return s, fmt.Errorf("%w: category %q is not in the catalogue", ErrInvalidSelection, c.Label)
	}
	s.Category = c
	return s, nil
}

// SetBackend selects b and resets category and type, even when b is unchanged
func (s State) SetBackend(b domain.Backend) (State, error) {
	if !b.Valid() {
		return s, fmt.Errorf("%w: %w: %s", ErrInvalidSelection, domain.ErrUnknownBackend, b)
	}
	s.Backend = b
	s.Category = s.catalogue.Default()
	s.SubType = domain.SubTypes()[0]
	return s, nil
}

// SetSubType selects a FilePursuit type. It is kept on other backends but unused.
func (s State) SetSubType(t domain.SubType) (State, error) {
	if !t.Valid() {
		return s, fmt.Errorf("%w: %w: %q", ErrInvalidSelection, domain.ErrUnknownSubType, string(t))
	}
	s.SubType = t
	return s, nil
}
