package application

import (
	"wbooks/internal/ports/output"
	"wbooks/pkg/acceptlang"
)

// Negotiator picks the catalog matching a client's language preference.
type Negotiator struct {
	registry output.CatalogRegistry
}

// NewNegotiator returns a Negotiator over registry.
func NewNegotiator(registry output.CatalogRegistry) *Negotiator {
	return &Negotiator{registry: registry}
}

// Negotiate walks the preference list in the order given, trying an exact
// tag first and then the primary language. It never fails: an empty,
// unknown or malformed header yields the default catalog.
func (n *Negotiator) Negotiate(acceptLanguage string) output.Catalog {
	for _, lang := range acceptlang.Parse(acceptLanguage) {
		if c, ok := n.registry.ForLocale(lang); ok {
			return c
		}
		if primary, ok := acceptlang.Primary(lang); ok {
			if c, ok := n.registry.ForLocale(primary); ok {
				return c
			}
		}
	}
	return n.registry.Default()
}
