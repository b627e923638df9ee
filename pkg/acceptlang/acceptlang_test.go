package acceptlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "fr", []string{"fr"}},
		{"uppercase region", "fr-CA", []string{"fr-ca"}},
		{"weights dropped, order kept", "de;q=0.9, fr;q=1.0 ,en", []string{"de", "fr", "en"}},
		{"empty items skipped", ",, en ,;q=0.5,", []string{"en"}},
		{"wildcard kept", "*", []string{"*"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.header))
		})
	}
}

func TestPrimary(t *testing.T) {
	p, ok := Primary("fr-ca")
	assert.True(t, ok)
	assert.Equal(t, "fr", p)

	_, ok = Primary("fr")
	assert.False(t, ok)

	_, ok = Primary("-x")
	assert.False(t, ok)
}
