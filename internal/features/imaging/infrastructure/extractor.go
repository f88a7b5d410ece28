package infrastructure

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MetadataExtractor finds a representative image URL in an HTML page: the
// Open Graph image first, then the first <img> src.
type MetadataExtractor interface {
	ExtractImage(html string) (string, bool)
}

var (
	ogImagePattern = regexp.MustCompile(`<meta property="og:image" content="([^"]+)"`)
	imgSrcPattern  = regexp.MustCompile(`<img[^>]+src="([^"]+)"[^>]*>`)
)

type regexExtractor struct{}

// NewRegexExtractor matches the two tags textually. Attribute order and quote
// style must be exactly as in the patterns.
func NewRegexExtractor() MetadataExtractor {
	return regexExtractor{}
}

func (regexExtractor) ExtractImage(html string) (string, bool) {
	if m := ogImagePattern.FindStringSubmatch(html); m != nil {
		return m[1], true
	}
	if m := imgSrcPattern.FindStringSubmatch(html); m != nil {
		return m[1], true
	}
	return "", false
}

type goqueryExtractor struct{}

// NewGoqueryExtractor parses the page, so attribute order and quoting do not
// matter.
func NewGoqueryExtractor() MetadataExtractor {
	return goqueryExtractor{}
}

func (goqueryExtractor) ExtractImage(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		if content = strings.TrimSpace(content); content != "" {
			return content, true
		}
	}

	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src = strings.TrimSpace(s.AttrOr("src", ""))
		return src == ""
	})
	return src, src != ""
}

// NewExtractor returns the extractor registered under name, defaulting to the
// regex extractor.
func NewExtractor(name string) MetadataExtractor {
	if name == "goquery" {
		return NewGoqueryExtractor()
	}
	return NewRegexExtractor()
}
