package application

import (
	"fmt"
	"strings"

	"fashion-advisor/backend/internal/features/suggestion/domain"
)

type outfitTemplate struct {
	id          string
	name        string
	description string
	items       []int
	rating      float64
}

var outfitTemplates = []outfitTemplate{
	{"outfit-1", "カジュアルデイリー", "日常使いに最適なカジュアルなコーディネート", []int{0, 4, 5}, 4.5},
	{"outfit-2", "エレガントパーティー", "パーティーやデートにぴったりのエレガントなスタイル", []int{1, 5}, 4.8},
	{"outfit-3", "ビジネスカジュアル", "仕事でも使える洗練されたスタイル", []int{3, 4, 5}, 4.3},
}

// OutfitCombinations groups suggestions into the fixed set of outfits.
// Positions past the end of suggestions are skipped.
func OutfitCombinations(suggestions []domain.Suggestion) []domain.OutfitCombination {
	outfits := make([]domain.OutfitCombination, 0, len(outfitTemplates))
	for _, tpl := range outfitTemplates {
		items := make([]domain.Suggestion, 0, len(tpl.items))
		for _, i := range tpl.items {
			if i < len(suggestions) {
				items = append(items, suggestions[i])
			}
		}
		outfits = append(outfits, domain.OutfitCombination{
			ID:          tpl.id,
			Name:        tpl.name,
			Description: tpl.description,
			Items:       items,
			Rating:      tpl.rating,
		})
	}
	return outfits
}

var (
	styleWords = map[string]string{
		"casual":   "カジュアル",
		"elegant":  "エレガント",
		"sporty":   "スポーティ",
		"business": "ビジネス",
		"vintage":  "ヴィンテージ",
	}
	bodyTypeWords = map[string]string{
		"slim":    "スリムな体型",
		"average": "標準的な体型",
		"plus":    "プラスサイズの体型",
	}
	heightWords = map[string]string{
		"short":  "小柄",
		"medium": "中背",
		"tall":   "高身長",
	}
)

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// OutfitPrompt describes a person wearing the outfit for the image model.
func OutfitPrompt(prefs domain.Preferences, outfit domain.OutfitCombination) string {
	style := describe(styleWords, prefs.Style)
	bodyType := describe(bodyTypeWords, withDefault(prefs.BodyType, "average"))
	height := describe(heightWords, withDefault(prefs.Height, "medium"))

	names := make([]string, 0, len(outfit.Items))
	for _, item := range outfit.Items {
		names = append(names, item.Name)
	}

	return fmt.Sprintf("%sなスタイルの%sの%sな人物が%sを着ている様子、高品質、詳細、リアル、ファッション写真、自然な光、スタジオ撮影",
		style, bodyType, height, strings.Join(names, "、"))
}

func outfitMetadata(prefs domain.Preferences) domain.OutfitImageMetadata {
	return domain.OutfitImageMetadata{
		Style:    prefs.Style,
		Color:    prefs.Color,
		Occasion: prefs.Occasion,
		Season:   prefs.Season,
		BodyType: withDefault(prefs.BodyType, "average"),
		Height:   withDefault(prefs.Height, "medium"),
	}
}

func mockOutfitImage(prefs domain.Preferences, outfit domain.OutfitCombination) domain.GeneratedOutfitImage {
	return domain.GeneratedOutfitImage{
		ID:       "mock-outfit-" + newID(),
		ImageURL: "https://via.placeholder.com/1024x1024/cccccc/666666?text=" + encodeComponent(outfit.Name),
		Prompt:   "モック画像",
		Metadata: outfitMetadata(prefs),
	}
}
