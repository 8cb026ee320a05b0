package domain

import "time"

// Timestamps holds the document timestamps written by the draft on every save.
// CreatedAt is set once at creation and never overwritten.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Language is a display language for bilingual labels.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// ParseLanguage maps a free-form tag onto a supported display language,
// defaulting to English.
func ParseLanguage(s string) Language {
	if len(s) >= 2 && (s[:2] == "ar" || s[:2] == "AR") {
		return LanguageArabic
	}
	return LanguageEnglish
}
