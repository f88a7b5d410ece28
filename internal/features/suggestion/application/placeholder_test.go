package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderImage(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		category string
		want     string
	}{
		{"tops", "Tシャツ", "トップス", "https://via.placeholder.com/300x300/ff6b6b/ffffff?text=T%E3%82%B7%E3%83%A3%E3%83%84"},
		{"bottoms", "pants", "ボトムス", "https://via.placeholder.com/300x300/4ecdc4/ffffff?text=pants"},
		{"outerwear", "coat", "アウター", "https://via.placeholder.com/300x300/45b7d1/ffffff?text=coat"},
		{"dress", "dress", "ワンピース", "https://via.placeholder.com/300x300/96ceb4/ffffff?text=dress"},
		{"shoes", "boots", "シューズ", "https://via.placeholder.com/300x300/feca57/ffffff?text=boots"},
		{"accessory", "hat", "アクセサリー", "https://via.placeholder.com/300x300/ff9ff3/ffffff?text=hat"},
		{"english alias", "hat", "Accessory", "https://via.placeholder.com/300x300/ff9ff3/ffffff?text=hat"},
		{"unknown category", "thing", "バッグ", "https://via.placeholder.com/300x300/cccccc/ffffff?text=thing"},
		{"space and ampersand", "a b&c", "", "https://via.placeholder.com/300x300/cccccc/ffffff?text=a%20b%26c"},
		{"unreserved marks", "シャツ (白)", "", "https://via.placeholder.com/300x300/cccccc/ffffff?text=%E3%82%B7%E3%83%A3%E3%83%84%20(%E7%99%BD)"},
		{"bang quote star", "it's*new!", "", "https://via.placeholder.com/300x300/cccccc/ffffff?text=it's*new!"},
		{"literal plus", "a+b", "", "https://via.placeholder.com/300x300/cccccc/ffffff?text=a%2Bb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderImage(tt.item, tt.category))
		})
	}
}

func TestFallbackCatalog(t *testing.T) {
	catalog := FallbackCatalog()

	assert.Len(t, catalog, 6)
	categories := make([]string, 0, len(catalog))
	for i, s := range catalog {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Color)
		assert.NotEmpty(t, s.ImageURL)
		assert.NotEqual(t, "#", s.ProductURL)
		assert.Equal(t, string(rune('1'+i)), s.ID)
		categories = append(categories, s.Category)
	}
	assert.Equal(t, []string{"アウター", "ワンピース", "トップス", "トップス", "ボトムス", "シューズ"}, categories)

	catalog[0].Name = "changed"
	assert.NotEqual(t, "changed", FallbackCatalog()[0].Name)
}
