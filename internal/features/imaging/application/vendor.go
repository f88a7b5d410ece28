package application

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// vendorRule derives a product image URL from a marketplace product URL
// without fetching the page.
type vendorRule struct {
	domain        string
	itemPattern   *regexp.Regexp
	imageTemplate string
}

var vendorRules = []vendorRule{
	{
		domain:        "rakuten.co.jp",
		itemPattern:   regexp.MustCompile(`/items/([^/?]+)`),
		imageTemplate: "https://thumbnail.image.rakuten.co.jp/@0_mall/rakutenfashion/cabinet/items/%s.jpg",
	},
}

func (r vendorRule) matchesHost(host string) bool {
	return host == r.domain || strings.HasSuffix(host, "."+r.domain)
}

// vendorImage returns the templated image URL when productURL belongs to a
// known marketplace and carries an item identifier.
func vendorImage(productURL string) (string, bool) {
	u, err := url.Parse(productURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())

	for _, rule := range vendorRules {
		if !rule.matchesHost(host) {
			continue
		}
		if m := rule.itemPattern.FindStringSubmatch(u.Path); m != nil {
			return fmt.Sprintf(rule.imageTemplate, m[1]), true
		}
	}
	return "", false
}
