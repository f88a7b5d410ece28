package application

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultAccent = "cccccc"

var categoryAccents = map[string]string{
	"トップス":   "ff6b6b",
	"ボトムス":   "4ecdc4",
	"アウター":   "45b7d1",
	"ワンピース":  "96ceb4",
	"シューズ":   "feca57",
	"アクセサリー": "ff9ff3",

	"tops":      "ff6b6b",
	"bottoms":   "4ecdc4",
	"outerwear": "45b7d1",
	"dress":     "96ceb4",
	"shoes":     "feca57",
	"accessory": "ff9ff3",
}

// PlaceholderImage returns a stand-in image URL that depends only on the
// item name and category. Unknown categories get a grey accent.
func PlaceholderImage(name, category string) string {
	accent, ok := categoryAccents[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		accent = defaultAccent
	}
	return fmt.Sprintf("https://via.placeholder.com/300x300/%s/ffffff?text=%s", accent, encodeComponent(name))
}

// componentUnescaper turns QueryEscape output into URI-component form: spaces
// as %20 and the marks !'()* left literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s for a query value the way encodeURIComponent does.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
