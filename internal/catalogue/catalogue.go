// Package catalogue holds the ordered list of content categories a query can be
// restricted to. The first entry is always the unrestricted "Any" category.
package catalogue

import (
	"errors"
	"fmt"
	"strings"

	"odgrip/internal/domain"
)

var ErrInvalidCatalogue = errors.New("invalid category catalogue")

var builtin = []domain.Category{
	{
		Pattern:     "",
		Label:       "Any",
		Placeholder: "Search anything",
	},
	{
		Pattern:     "mkv|mp4|avi|mov|mpg|wmv|divx|mpeg",
		Label:       "TV/Movies",
		Placeholder: "eg. The.Blacklist.S01",
	},
	{
		Pattern:     "MOBI|CBZ|CBR|CBC|CHM|EPUB|FB2|LIT|LRF|ODT|PDF|PRC|PDB|PML|RB|RTF|TCR|DOC|DOCX",
		Label:       "Books",
		Placeholder: "eg. 1984",
	},
	{
		Pattern:     "mp3|wav|ac3|ogg|flac|wma|m4a|aac|mod",
		Label:       "Music",
		Placeholder: "eg. K.Flay discography",
	},
	{
		Pattern:     "exe|iso|dmg|tar|7z|bz2|gz|rar|zip|apk",
		Label:       "Software/ISO/DMG/Games",
		Placeholder: "eg. GTA V",
	},
	{
		Pattern:     "jpg|png|bmp|gif|tif|tiff|psd",
		Label:       "Images",
		Placeholder: "eg. Nature landscapes",
	},
}

// Catalogue is an immutable, ordered set of categories
type Catalogue struct {
	categories []domain.Category
}

// Builtin returns the catalogue shipped with the application
func Builtin() *Catalogue {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates categories and builds a catalogue from them
func New(categories []domain.Category) (*Catalogue, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCatalogue)
	}
	if !categories[0].IsAny() {
		return nil, fmt.Errorf("%w: first category %q must have an empty pattern", ErrInvalidCatalogue, categories[0].Label)
	}

	seen := make(map[string]bool, len(categories))
	for i, cat := range categories {
		label := strings.ToLower(strings.TrimSpace(cat.Label))
		if label == "" {
			return nil, fmt.Errorf("%w: category %d has no label", ErrInvalidCatalogue, i)
		}
		if seen[label] {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidCatalogue, cat.Label)
		}
		seen[label] = true
		if i > 0 && cat.IsAny() {
			return nil, fmt.Errorf("%w: only the first category may have an empty pattern, %q does too", ErrInvalidCatalogue, cat.Label)
		}
	}

	cats := make([]domain.Category, len(categories))
	copy(cats, categories)
	return &Catalogue{categories: cats}, nil
}

// List returns the categories in order. The slice is a copy.
func (c *Catalogue) List() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Default returns the unrestricted category
func (c *Catalogue) Default() domain.Category {
	return c.categories[0]
}

// Len returns the number of categories
func (c *Catalogue) Len() int {
	return len(c.categories)
}

// At returns the category at index i
func (c *Catalogue) At(i int) (domain.Category, bool) {
	if i < 0 || i >= len(c.categories) {
		return domain.Category{}, false
	}
	return c.categories[i], true
}

// Index returns the position of cat, or -1 when it is not a member
func (c *Catalogue) Index(cat domain.Category) int {
	for i, known := range c.categories {
		if known == cat {
			return i
		}
	}
	return -1
}

// Contains reports whether cat is a member
func (c *Catalogue) Contains(cat domain.Category) bool {
	return c.Index(cat) >= 0
}

// ByLabel finds a category by label, ignoring case
func (c *Catalogue) ByLabel(label string) (domain.Category, bool) {
	label = strings.TrimSpace(label)
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Label, label) {
			return cat, true
		}
	}
	return domain.Category{}, false
}
