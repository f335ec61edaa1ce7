package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrUnknownSubType = errors.New("unknown filepursuit type")
)

// Category restricts results to a set of file extensions
type Category struct {
	Pattern     string // pipe-delimited extensions, "" means unrestricted
	Label       string
	Placeholder string // hint shown in the empty query field
}

// IsAny reports whether the category places no restriction on extensions
func (c Category) IsAny() bool {
	return c.Pattern == ""
}

// Backend is one of the external search services a query is sent to
type Backend int

const (
	BackendGoogle Backend = iota
	BackendStartpage
	BackendFilePursuit
)

var (
	backendNames  = [...]string{"google", "startpage", "filepursuit"}
	backendTitles = [...]string{"Google", "Startpage", "FilePursuit"}
)

// Backends returns every backend in display order
func Backends() []Backend {
	return []Backend{BackendGoogle, BackendStartpage, BackendFilePursuit}
}

// Valid reports whether b is a known backend
func (b Backend) Valid() bool {
	return b >= BackendGoogle && b <= BackendFilePursuit
}

func (b Backend) String() string {
	if !b.Valid() {
		return fmt.Sprintf("backend(%d)", int(b))
	}
	return backendNames[b]
}

// Title returns the name shown in the UI
func (b Backend) Title() string {
	if !b.Valid() {
		return b.String()
	}
	return backendTitles[b]
}

// ParseBackend resolves a backend by name, case-insensitively
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends() {
		if strings.EqualFold(name, b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// SubType is a FilePursuit content type token, sent verbatim
type SubType string

const (
	SubTypeAll     SubType = "all"
	SubTypeEbook   SubType = "ebook"
	SubTypeVideo   SubType = "video"
	SubTypeAudio   SubType = "audio"
	SubTypeMobile  SubType = "mobile"
	SubTypeArchive SubType = "archive"
)

// SubTypes returns the FilePursuit types in order; the first is the reset value
func SubTypes() []SubType {
	return []SubType{SubTypeAll, SubTypeEbook, SubTypeVideo, SubTypeAudio, SubTypeMobile, SubTypeArchive}
}

// Valid reports whether t is a known FilePursuit type
func (t SubType) Valid() bool {
	for _, known := range SubTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseSubType resolves a FilePursuit type token
func ParseSubType(token string) (SubType, error) {
	t := SubType(strings.ToLower(token))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubType, token)
	}
	return t, nil
}

// Request is a composed outbound search target
type Request struct {
	Backend Backend
	URL     string
}
