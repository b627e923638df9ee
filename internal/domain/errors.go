package domain

import "errors"

// Domain errors.
var (
	ErrNoLocales       = errors.New("no supported locale configured")
	ErrInvalidLocale   = errors.New("invalid locale tag")
	ErrDuplicateLocale = errors.New("duplicate locale tag")
	ErrCatalogLoad     = errors.New("translation catalog could not be loaded")
	ErrMissingMessage  = errors.New("message missing from catalog")
	ErrEmptyName       = errors.New("name must not be empty")
)
