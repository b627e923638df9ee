package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbooks/internal/domain"
	"wbooks/internal/infrastructure/i18n"
	"wbooks/internal/ports/output"
)

// stubCatalog renders every message as "<tag>:<Name>".
type stubCatalog struct {
	tag string
	err error
}

func (c stubCatalog) Tag() string { return c.tag }

func (c stubCatalog) T(_ string, data map[string]any) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.tag + ":" + data["Name"].(string), nil
}

type stubRegistry []stubCatalog

func (r stubRegistry) ForLocale(tag string) (output.Catalog, bool) {
	for _, c := range r {
		if c.tag == strings.ToLower(tag) {
			return c, true
		}
	}
	return nil, false
}

func (r stubRegistry) Default() output.Catalog { return r[0] }

func TestNegotiate(t *testing.T) {
	n := NewNegotiator(stubRegistry{{tag: "en"}, {tag: "fr"}, {tag: "pt-br"}})

	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{"absent", "", "en"},
		{"exact", "fr", "fr"},
		{"case insensitive", "FR", "fr"},
		{"primary language", "fr-CA", "fr"},
		{"region exact", "pt-BR", "pt-br"},
		{"unsupported", "de", "en"},
		{"first match wins", "de, fr;q=0.5, en", "fr"},
		{"order beats weight", "en;q=0.1, fr;q=0.9", "en"},
		{"malformed", ";;;,,=q", "en"},
		{"wildcard", "*", "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Negotiate(tc.header).Tag())
		})
	}
}

func TestGreetingService_Greet(t *testing.T) {
	reg, err := i18n.Load()
	require.NoError(t, err)
	svc := NewGreetingService(NewNegotiator(reg))

	testCases := []struct {
		name       string
		header     string
		person     string
		wantText   string
		wantLocale string
	}{
		{"default", "", "World", "Hello, World!", "en"},
		{"french", "fr", "Monde", "Bonjour, Monde !", "fr"},
		{"fallback", "de", "World", "Hello, World!", "en"},
		{"browser header", "fr-FR,fr;q=0.9,en-US;q=0.8,en;q=0.7", "Ami", "Bonjour, Ami !", "fr"},
		{"unicode name", "", "Zoë 世界", "Hello, Zoë 世界!", "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := svc.Greet(context.Background(), tc.header, tc.person)
			require.NoError(t, err)
			assert.Equal(t, tc.wantText, g.Text)
			assert.Equal(t, tc.wantLocale, g.Locale)
		})
	}
}

func TestGreetingService_Errors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewGreetingService(NewNegotiator(stubRegistry{{tag: "en", err: boom}}))

	_, err := svc.Greet(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.Greet(context.Background(), "", "World")
	assert.ErrorIs(t, err, boom)
}
