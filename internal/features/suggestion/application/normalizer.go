package application

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/text/width"

	"fashion-advisor/backend/internal/features/suggestion/domain"
	"fashion-advisor/backend/internal/metrics"
)

// Defaults for fields a structured reply left out.
const (
	defaultName        = "服の名前"
	defaultDescription = "説明"
	defaultCategory    = "カテゴリ"
	defaultColor       = "色"
)

// Defaults for records recovered from free text.
const (
	textDescription = "AIが提案する服"
	textColor       = "お好みの色"
)

var (
	listMarkerPattern = regexp.MustCompile(`^\d+\.`)
	urlPattern        = regexp.MustCompile(`https?://[^\s]+`)
)

// Label keywords recognized by the text tier. Matching is done on the
// width-folded, lower-cased label.
var (
	nameKeywords        = []string{"名前", "商品名", "name"}
	descriptionKeywords = []string{"説明", "特徴", "description"}
	categoryKeywords    = []string{"カテゴリ", "種類", "category"}
	colorKeywords       = []string{"色", "カラー", "color", "colour"}
	recordKeywords      = []string{"提案", "おすすめ"}
	vendorKeywords      = []string{"http", "楽天", "rakuten"}
)

// tierParser turns a reply into suggestions. ok is false when the tier could
// not produce a result and the next tier should run.
type tierParser func(raw string, prefs domain.Preferences) (suggestions []domain.Suggestion, ok bool)

type tierStep struct {
	tier  domain.Tier
	parse tierParser
}

// Normalizer converts raw model replies into suggestions.
type Normalizer struct {
	logger *zap.Logger
	tiers  []tierStep
}

// NewNormalizer creates a Normalizer running the JSON, text and catalog tiers
// in that order.
func NewNormalizer(logger *zap.Logger) *Normalizer {
	n := &Normalizer{logger: logger}
	n.tiers = []tierStep{
		{domain.TierJSON, n.parseJSON},
		{domain.TierText, parseText},
		{domain.TierCatalog, func(string, domain.Preferences) ([]domain.Suggestion, bool) {
			return FallbackCatalog(), true
		}},
	}
	return n
}

// Normalize returns the suggestions of the first tier that succeeds and the
// tier that produced them. It never fails.
func (n *Normalizer) Normalize(raw string, prefs domain.Preferences) ([]domain.Suggestion, domain.Tier) {
	for _, t := range n.tiers {
		if suggestions, ok := t.parse(raw, prefs); ok {
			metrics.NormalizerTier.WithLabelValues(string(t.tier)).Inc()
			return suggestions, t.tier
		}
	}
	// Unreachable: the catalog tier always succeeds.
	return FallbackCatalog(), domain.TierCatalog
}

func newID() string {
	return ulid.Make().String()
}

// ==========================
// JSON tier
// ==========================

// arraySpan returns the text from the first '[' to the last ']'.
func arraySpan(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

func (n *Normalizer) parseJSON(raw string, prefs domain.Preferences) ([]domain.Suggestion, bool) {
	span, ok := arraySpan(raw)
	if !ok {
		return nil, false
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(span), &elements); err != nil {
		n.logger.Debug("falling back to text parsing",
			zap.Error(fmt.Errorf("%w: %v", domain.ErrMalformedReply, err)))
		return nil, false
	}

	color := defaultColor
	if prefs.Color != "" {
		color = prefs.Color
	}

	suggestions := make([]domain.Suggestion, 0, len(elements))
	for _, element := range elements {
		// Elements that are not objects leave fields nil and take every default.
		var fields map[string]any
		_ = json.Unmarshal(element, &fields)

		suggestions = append(suggestions, domain.Suggestion{
			ID:          newID(),
			Name:        stringField(fields, defaultName, "name"),
			Description: stringField(fields, defaultDescription, "description"),
			Category:    stringField(fields, defaultCategory, "category"),
			Color:       stringField(fields, color, "color"),
			ProductURL:  stringField(fields, domain.NoProductURL, "productUrl", "webUrl"),
		})
	}
	return suggestions, true
}

// stringField returns the first non-blank value among keys, rendering numbers
// and booleans as text, or def when there is none.
func stringField(fields map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		var s string
		switch v := fields[key].(type) {
		case string:
			s = v
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(v)
		}
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return def
}

// ==========================
// Text tier
// ==========================

type textRecord struct {
	name, description, category, color, productURL string
}

func (r textRecord) populated() bool {
	return r != textRecord{}
}

func parseText(raw string, prefs domain.Preferences) ([]domain.Suggestion, bool) {
	var (
		suggestions []domain.Suggestion
		current     textRecord
	)
	flush := func() {
		if current.populated() {
			suggestions = append(suggestions, current.toSuggestion(len(suggestions), prefs))
		}
		current = textRecord{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		folded := strings.ToLower(width.Fold.String(line))

		if listMarkerPattern.MatchString(folded) || containsAny(folded, recordKeywords) {
			flush()
			continue
		}

		if label, value, ok := splitLabel(line); ok {
			label = strings.ToLower(width.Fold.String(label))
			if containsAny(label, nameKeywords) {
				current.name = value
			}
			if containsAny(label, descriptionKeywords) {
				current.description = value
			}
			if containsAny(label, categoryKeywords) {
				current.category = value
			}
			if containsAny(label, colorKeywords) {
				current.color = value
			}
		}

		if containsAny(folded, vendorKeywords) {
			if u := urlPattern.FindString(line); u != "" {
				current.productURL = u
			}
		}
	}
	flush()

	return suggestions, len(suggestions) > 0
}

// splitLabel splits "label: value" at the first ASCII or full-width colon.
// ok is false when there is no colon or the value is empty.
func splitLabel(line string) (label, value string, ok bool) {
	i := strings.IndexAny(line, ":：")
	if i < 0 {
		return "", "", false
	}
	label = line[:i]
	rest := line[i:]
	if strings.HasPrefix(rest, "：") {
		rest = rest[len("："):]
	} else {
		rest = rest[1:]
	}
	value = strings.TrimSpace(rest)
	return label, value, value != ""
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func (r textRecord) toSuggestion(index int, prefs domain.Preferences) domain.Suggestion {
	s := domain.Suggestion{
		ID:          newID(),
		Name:        r.name,
		Description: r.description,
		Category:    r.category,
		Color:       r.color,
		ProductURL:  r.productURL,
	}
	if s.Name == "" {
		s.Name = fmt.Sprintf("提案%d", index+1)
	}
	if s.Description == "" {
		s.Description = textDescription
	}
	if s.Category == "" {
		s.Category = categoryForOccasion(prefs.Occasion)
	}
	if s.Color == "" {
		s.Color = prefs.Color
	}
	if s.Color == "" {
		s.Color = textColor
	}
	if s.ProductURL == "" {
		s.ProductURL = domain.NoProductURL
	}
	return s
}

func categoryForOccasion(occasion string) string {
	switch occasion {
	case "work":
		return "ビジネス"
	case "sports":
		return "スポーツ"
	case "party":
		return "パーティー"
	case "date":
		return "デート"
	default:
		return "カジュアル"
	}
}
