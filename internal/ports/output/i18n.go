package output

// Catalog is the translation table of a single locale.
type Catalog interface {
	// Tag returns the locale tag the catalog was loaded for (e.g. "fr").
	Tag() string
	// T renders the message identified by id. data fills the template
	// placeholders (may be nil).
	T(id string, data map[string]any) (string, error)
}

// CatalogRegistry exposes the catalogs loaded at startup.
type CatalogRegistry interface {
	// ForLocale returns the catalog registered under tag, if any.
	ForLocale(tag string) (Catalog, bool)
	// Default returns the catalog of the default locale. Never nil.
	Default() Catalog
}
