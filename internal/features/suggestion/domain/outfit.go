package domain

// OutfitCombination groups suggestions into a coordinated look.
type OutfitCombination struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Items       []Suggestion `json:"items"`
	Rating      float64      `json:"rating"`
}

// OutfitImageMetadata records the preferences an outfit image was made for.
type OutfitImageMetadata struct {
	Style    string `json:"style"`
	Color    string `json:"color"`
	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	BodyType string `json:"bodyType"`
	Height   string `json:"height"`
}

// GeneratedOutfitImage is a rendered picture of an outfit.
type GeneratedOutfitImage struct {
	ID       string              `json:"id"`
	ImageURL string              `json:"imageUrl"`
	Prompt   string              `json:"prompt"`
	Metadata OutfitImageMetadata `json:"metadata"`
}
