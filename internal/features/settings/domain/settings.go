package domain

// Tone is the personality tone of the advisor.
type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneElegant      Tone = "elegant"
	ToneEnthusiastic Tone = "enthusiastic"
)

// Register is the language register used in replies.
type Register string

const (
	RegisterPolite Register = "polite"
	RegisterCasual Register = "casual"
	RegisterFormal Register = "formal"
)

// DetailLevel controls how verbose the advice should be.
type DetailLevel string

const (
	DetailBrief        DetailLevel = "brief"
	DetailDetailed     DetailLevel = "detailed"
	DetailVeryDetailed DetailLevel = "very-detailed"
)

// Focus is the direction of the fashion advice.
type Focus string

const (
	FocusTrendy    Focus = "trendy"
	FocusClassic   Focus = "classic"
	FocusPractical Focus = "practical"
	FocusCreative  Focus = "creative"
	FocusBalanced  Focus = "balanced"
)

// Personality groups the persona settings.
type Personality struct {
	Tone        Tone        `json:"tone"`
	Language    Register    `json:"language"`
	DetailLevel DetailLevel `json:"detailLevel"`
}

// FashionAdvice groups the advice focus and its inclusion flags.
type FashionAdvice struct {
	Focus                   Focus `json:"focus"`
	IncludeAccessories      bool  `json:"includeAccessories"`
	IncludeStylingTips      bool  `json:"includeStylingTips"`
	IncludePriceRange       bool  `json:"includePriceRange"`
	IncludeBrandSuggestions bool  `json:"includeBrandSuggestions"`
}

// OutputFormat groups the output constraints.
type OutputFormat struct {
	MaxItems              int  `json:"maxItems"`
	IncludeImages         bool `json:"includeImages"`
	IncludeDescriptions   bool `json:"includeDescriptions"`
	IncludeColorPalettes  bool `json:"includeColorPalettes"`
	IncludeSeasonalAdvice bool `json:"includeSeasonalAdvice"`
}

// PromptSettings is the user-tunable configuration used to build prompts.
type PromptSettings struct {
	Personality        Personality   `json:"personality"`
	FashionAdvice      FashionAdvice `json:"fashionAdvice"`
	OutputFormat       OutputFormat  `json:"outputFormat"`
	CustomInstructions string        `json:"customInstructions"`
}

// SettingsPatch is a partial update. Each non-nil section replaces the
// corresponding section of the current settings as a whole.
type SettingsPatch struct {
	Personality        *Personality   `json:"personality,omitempty"`
	FashionAdvice      *FashionAdvice `json:"fashionAdvice,omitempty"`
	OutputFormat       *OutputFormat  `json:"outputFormat,omitempty"`
	CustomInstructions *string        `json:"customInstructions,omitempty"`
}

// DefaultPromptSettings returns the settings used when nothing is stored.
func DefaultPromptSettings() PromptSettings {
	return PromptSettings{
		Personality: Personality{
			Tone:        ToneFriendly,
			Language:    RegisterPolite,
			DetailLevel: DetailDetailed,
		},
		FashionAdvice: FashionAdvice{
			Focus:              FocusBalanced,
			IncludeAccessories: true,
			IncludeStylingTips: true,
		},
		OutputFormat: OutputFormat{
			MaxItems:              5,
			IncludeDescriptions:   true,
			IncludeColorPalettes:  true,
			IncludeSeasonalAdvice: true,
		},
	}
}

// Apply returns a copy of s with the sections present in p replaced.
func (s PromptSettings) Apply(p SettingsPatch) PromptSettings {
	if p.Personality != nil {
		s.Personality = *p.Personality
	}
	if p.FashionAdvice != nil {
		s.FashionAdvice = *p.FashionAdvice
	}
	if p.OutputFormat != nil {
		s.OutputFormat = *p.OutputFormat
	}
	if p.CustomInstructions != nil {
		s.CustomInstructions = *p.CustomInstructions
	}
	return s
}

// Normalized replaces unknown enum values and a non-positive item count with
// their defaults.
func (s PromptSettings) Normalized() PromptSettings {
	def := DefaultPromptSettings()

	switch s.Personality.Tone {
	case ToneFriendly, ToneProfessional, ToneCasual, ToneElegant, ToneEnthusiastic:
	default:
		s.Personality.Tone = def.Personality.Tone
	}
	switch s.Personality.Language {
	case RegisterPolite, RegisterCasual, RegisterFormal:
	default:
		s.Personality.Language = def.Personality.Language
	}
	switch s.Personality.DetailLevel {
	case DetailBrief, DetailDetailed, DetailVeryDetailed:
	default:
		s.Personality.DetailLevel = def.Personality.DetailLevel
	}
	switch s.FashionAdvice.Focus {
	case FocusTrendy, FocusClassic, FocusPractical, FocusCreative, FocusBalanced:
	default:
		s.FashionAdvice.Focus = def.FashionAdvice.Focus
	}
	if s.OutputFormat.MaxItems < 1 {
		s.OutputFormat.MaxItems = def.OutputFormat.MaxItems
	}
	return s
}
