package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticName(t *testing.T) {
	testCases := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/", ".", true},
		{"", ".", true},
		{"/index.html", "index.html", true},
		{"/css/site.css", "css/site.css", true},
		{"/docs/", "docs", true},
		{"/../etc/passwd", "", false},
		{"/a/../../b", "", false},
		{"/..", "", false},
		{"/a/./b", "", false},
		{"//etc/passwd", "", false},
		{"/a//b", "", false},
		{"/a\x00b", "", false},
		{"/..foo/bar", "..foo/bar", true},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := staticName(tc.path)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
