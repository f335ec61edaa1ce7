// Package compose turns a selection into the URL a search backend expects.
// Nothing here performs I/O; the same state always yields the same URL.
package compose

import (
	"errors"
	"fmt"
	"strings"

	"odgrip/internal/domain"
	"odgrip/internal/selection"
)

// ErrEmptyQuery signals that there is nothing to search for. It is not a
// failure: callers withhold dispatch and wait for more input.
var ErrEmptyQuery = errors.New("empty query")

const (
	googleSearchURL      = "https://www.google.com/search?q="
	startpageSearchURL   = "https://www.startpage.com/do/search?query="
	filePursuitSearchURL = "https://filepursuit.com/pursuit?q=%s&type=%s&sort=datedesc"

	// Skip generated pages and require a listing title.
	listingFilter = ` -inurl:(jsp|pl|php|html|aspx|htm|cf|shtml) intitle:"Index of"`
	// Sites known to fake "Index of" pages.
	siteDenylist = ` -inurl:(listen77|mp3raid|mp3toss|mp3drug|index_of|index-of|wallywashis|downloadmana)`
)

// Compose builds the request for the selected backend
func Compose(s selection.State) (domain.Request, error) {
	if strings.TrimSpace(s.Query) == "" {
		return domain.Request{}, ErrEmptyQuery
	}

	var url string
	switch s.Backend {
	case domain.BackendGoogle:
		url = googleSearchURL + EscapeComponent(Augment(s.Query, s.Category))
	case domain.BackendStartpage:
		url = startpageSearchURL + EscapeComponent(Augment(s.Query, s.Category))
	case domain.BackendFilePursuit:
		url = fmt.Sprintf(filePursuitSearchURL, EscapeComponent(s.Query), s.SubType)
	default:
		return domain.Request{}, fmt.Errorf("%w: %w: %s", selection.ErrInvalidSelection, domain.ErrUnknownBackend, s.Backend)
	}

	return domain.Request{Backend: s.Backend, URL: url}, nil
}

// Augment appends the operators that steer a web search engine to directory listings
func Augment(query string, c domain.Category) string {
	var b strings.Builder
	b.WriteString(query)
	if !c.IsAny() {
		b.WriteString(" +(")
		b.WriteString(c.Pattern)
		b.WriteString(")")
	}
	b.WriteString(listingFilter)
	b.WriteString(siteDenylist)
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s the way browsers encode a URI component:
// letters, digits and -_.!~*'() pass through, everything else is escaped
// byte by byte, including space as %20.
func EscapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}
