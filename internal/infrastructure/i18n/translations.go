package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"wbooks/internal/domain"
	"wbooks/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// SupportedLocales is the ordered set of locales compiled into the binary.
// The first entry is the default.
var SupportedLocales = []string{"en", "fr"}

// Ensure the registry and its catalogs implement the output ports.
var (
	_ output.CatalogRegistry = (*Registry)(nil)
	_ output.Catalog         = (*Catalog)(nil)
)

// Catalog is a go-i18n Localizer pinned to a single language.
type Catalog struct {
	tag       string
	localizer *i18n.Localizer
}

// Tag returns the locale tag of the catalog.
func (c *Catalog) Tag() string { return c.tag }

// T renders the message identified by id with data as template input.
func (c *Catalog) T(id string, data map[string]any) (string, error) {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return "", fmt.Errorf("i18n: localize %s (locale=%s): %w", id, c.tag, err)
	}
	return msg, nil
}

type entry struct {
	key     string
	catalog *Catalog
}

// Registry holds one catalog per supported locale, in declaration order.
// It is never mutated after construction.
type Registry struct {
	entries []entry
}

// Load builds the registry from the embedded active.*.toml files.
func Load() (*Registry, error) {
	return NewRegistry(localeFS, SupportedLocales, domain.RequiredMessages)
}

// NewRegistry loads active.<tag>.toml from fsys for every locale. Each
// catalog must carry its own translation of every required message ID;
// falling back to another language is not accepted at load time.
func NewRegistry(fsys fs.FS, locales []string, required []string) (*Registry, error) {
	if len(locales) == 0 {
		return nil, domain.ErrNoLocales
	}

	tags := make([]language.Tag, 0, len(locales))
	keys := make([]string, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("i18n: %q: %w: %v", l, domain.ErrInvalidLocale, err)
		}
		key := strings.ToLower(tag.String())
		if slices.Contains(keys, key) {
			return nil, fmt.Errorf("i18n: %q: %w", l, domain.ErrDuplicateLocale)
		}
		tags = append(tags, tag)
		keys = append(keys, key)
	}

	bundle := i18n.NewBundle(tags[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	r := &Registry{entries: make([]entry, 0, len(tags))}
	for i, tag := range tags {
		file := fmt.Sprintf("active.%s.toml", tag.String())
		mf, err := bundle.LoadMessageFileFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w: %v", file, domain.ErrCatalogLoad, err)
		}
		for _, id := range required {
			if !hasMessage(mf, id) {
				return nil, fmt.Errorf("i18n: %s in %s: %w", id, file, domain.ErrMissingMessage)
			}
		}
		r.entries = append(r.entries, entry{
			key: keys[i],
			catalog: &Catalog{
				tag:       tag.String(),
				localizer: i18n.NewLocalizer(bundle, tag.String()),
			},
		})
	}

	return r, nil
}

func hasMessage(mf *i18n.MessageFile, id string) bool {
	for _, m := range mf.Messages {
		if m.ID == id && m.Other != "" {
			return true
		}
	}
	return false
}

// ForLocale returns the catalog for tag. The lookup ignores case.
func (r *Registry) ForLocale(tag string) (output.Catalog, bool) {
	key := strings.ToLower(tag)
	for _, e := range r.entries {
		if e.key == key {
			return e.catalog, true
		}
	}
	return nil, false
}

// Default returns the catalog of the first supported locale.
func (r *Registry) Default() output.Catalog {
	return r.entries[0].catalog
}

// Tags returns the supported locale tags in order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.catalog.tag
	}
	return tags
}
