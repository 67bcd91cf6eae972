package entity

// TranslationTarget is a language the translation proxy may translate into.
type TranslationTarget string

const (
	TranslationTargetEN TranslationTarget = "EN"
	TranslationTargetKO TranslationTarget = "KO"
	TranslationTargetDE TranslationTarget = "DE"
)

// IsValid checks if the target is one the proxy accepts.
func (t TranslationTarget) IsValid() bool {
	switch t {
	case TranslationTargetEN, TranslationTargetKO, TranslationTargetDE:
		return true
	default:
		return false
	}
}

// TranslationRequest is a single text to translate.
type TranslationRequest struct {
	Text       string
	Target     TranslationTarget
	SourceLang string // Optional; empty lets the provider detect it.
	IsHTML     bool   // Keep markup intact while translating.
}

// TranslationResult is the provider answer.
type TranslationResult struct {
	TranslatedText     string
	DetectedSourceLang string
}
