package entity

import (
	"slices"
	"strings"
)

// Language is a display language code served by the site.
type Language string

const (
	// LanguageEnglish is the default language.
	LanguageEnglish Language = "en"
	// LanguageKorean is the Korean translation.
	LanguageKorean Language = "ko"
)

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// Languages is a slice of Language for convenience.
type Languages []Language

// Contains checks if the set contains a specific language.
func (ls Languages) Contains(lang Language) bool {
	return slices.Contains(ls, lang)
}

// LanguagesFromStrings converts configured codes to Languages, dropping blanks and duplicates.
func LanguagesFromStrings(ss []string) Languages {
	result := make(Languages, 0, len(ss))
	for _, s := range ss {
		lang := Language(strings.ToLower(strings.TrimSpace(s)))
		if lang == "" || result.Contains(lang) {
			continue
		}
		result = append(result, lang)
	}

	return result
}
