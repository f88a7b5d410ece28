package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractors(t *testing.T) {
	extractors := map[string]MetadataExtractor{
		"regex":   NewRegexExtractor(),
		"goquery": NewGoqueryExtractor(),
	}

	tests := []struct {
		name   string
		html   string
		want   string
		wantOK bool
	}{
		{
			name: "og image wins over img",
			html: `<html><head><meta property="og:image" content="https://cdn.example.com/og.jpg"></head>` +
				`<body><img class="hero" src="https://cdn.example.com/first.jpg"></body></html>`,
			want:   "https://cdn.example.com/og.jpg",
			wantOK: true,
		},
		{
			name:   "falls back to first img",
			html:   `<html><body><p>no meta</p><img alt="a" src="/img/a.png"><img src="/img/b.png"></body></html>`,
			want:   "/img/a.png",
			wantOK: true,
		},
		{
			name:   "nothing found",
			html:   `<html><body><p>text only</p></body></html>`,
			wantOK: false,
		},
	}

	for name, extractor := range extractors {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				got, ok := extractor.ExtractImage(tt.html)
				assert.Equal(t, tt.wantOK, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestExtractors_AttributeOrder(t *testing.T) {
	html := `<head><meta content="https://cdn.example.com/og.jpg" property="og:image"></head>`

	_, ok := NewRegexExtractor().ExtractImage(html)
	assert.False(t, ok)

	got, ok := NewGoqueryExtractor().ExtractImage(html)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/og.jpg", got)
}

func TestNewExtractor(t *testing.T) {
	assert.IsType(t, goqueryExtractor{}, NewExtractor("goquery"))
	assert.IsType(t, regexExtractor{}, NewExtractor("regex"))
	assert.IsType(t, regexExtractor{}, NewExtractor(""))
}
