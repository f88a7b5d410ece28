package domain

import "errors"

// ErrNotFound is returned by a Store when the key holds no value.
var ErrNotFound = errors.New("settings: key not found")

// Storage keys.
const (
	PromptSettingsKey = "ai_prompt_settings"
	CredentialKey     = "ai_credential"
)
