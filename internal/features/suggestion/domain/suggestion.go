package domain

import "errors"

var (
	// ErrMissingCredential is returned before any upstream call when no API key
	// is configured. It is the only pipeline error surfaced to callers.
	ErrMissingCredential = errors.New("missing credential: no API key configured")

	// ErrUpstreamCall wraps transport failures and non-success responses from
	// the language model endpoints.
	ErrUpstreamCall = errors.New("upstream call failed")

	// ErrMalformedReply marks a bracketed span in a model reply that is not a
	// JSON array.
	ErrMalformedReply = errors.New("malformed model reply")
)

// NoProductURL is the sentinel product URL meaning "no product page".
const NoProductURL = "#"

// Preferences are the user's style choices. BodyType is one of slim, average,
// plus and Height one of short, medium, tall; every field may be empty.
type Preferences struct {
	Style    string `json:"style"`
	Color    string `json:"color"`
	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	BodyType string `json:"bodyType,omitempty"`
	Height   string `json:"height,omitempty"`
}

// Suggestion is a normalized clothing recommendation. Every suggestion
// returned by the service has non-empty Name, Description, Category, Color
// and ImageURL.
type Suggestion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	ProductURL  string `json:"productUrl"`
	ImageURL    string `json:"imageUrl"`
}

// HasProductURL reports whether the suggestion points at a real product page.
func (s Suggestion) HasProductURL() bool {
	return s.ProductURL != "" && s.ProductURL != NoProductURL
}

// Tier identifies which normalization step produced a result.
type Tier string

const (
	TierJSON    Tier = "json"
	TierText    Tier = "text"
	TierCatalog Tier = "catalog"
)
