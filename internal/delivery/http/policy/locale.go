package policy

import (
	"strings"

	"koostory/config"
	"koostory/internal/domain/entity"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header before it is parsed.
const maxAcceptLanguageLength = 4096

// Resolution is the language picked for one request.
type Resolution struct {
	Language entity.Language
	// FromPath is true when the first path segment is a supported language.
	FromPath bool
}

// LocaleResolver picks the display language of a request.
type LocaleResolver struct {
	Supported entity.Languages
	Default   entity.Language
}

// NewLocaleResolver builds the resolver from the i18n config.
func NewLocaleResolver(cfg *config.Config) LocaleResolver {
	return LocaleResolver{
		Supported: entity.LanguagesFromStrings(cfg.I18n.Supported),
		Default:   entity.Language(strings.ToLower(cfg.I18n.Default)),
	}
}

// Resolve applies, highest first: the explicit selection (the lang query value) when
// supported; a language segment at the start of the path; Accept-Language on the
// root path only; the default language.
//
// A first segment shaped like a language code that is not supported is NotFound even
// when an explicit selection is present. FromPath reports whether the first segment was
// a supported language, whichever language wins. The root path redirects to the prefixed root
// when the browser prefers a supported non-default language.
func (r LocaleResolver) Resolve(path, acceptLanguage, explicit string) (Resolution, Decision) {
	segment := firstSegment(path)
	var fromPath entity.Language
	if looksLikeLanguage(segment) {
		lang := entity.Language(strings.ToLower(segment))
		if !r.Supported.Contains(lang) {
			return Resolution{}, NotFound()
		}
		fromPath = lang
	}

	if lang := entity.Language(strings.ToLower(strings.TrimSpace(explicit))); lang != "" && r.Supported.Contains(lang) {
		return Resolution{Language: lang, FromPath: fromPath != ""}, Allow()
	}

	if fromPath != "" {
		return Resolution{Language: fromPath, FromPath: true}, Allow()
	}

	if path == "/" {
		if preferred, ok := r.negotiate(acceptLanguage); ok && preferred != r.Default {
			return Resolution{Language: preferred}, RedirectTo("/" + preferred.String())
		}
	}

	return Resolution{Language: r.Default}, Allow()
}

// negotiate returns the supported language of the highest-weighted Accept-Language
// tag. Tags are compared by base language, so ko-KR selects ko.
func (r LocaleResolver) negotiate(header string) (entity.Language, bool) {
	if header == "" || len(header) > maxAcceptLanguageLength {
		return "", false
	}

	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}

	// tags come back ordered by weight, highest first
	for i, tag := range tags {
		if weights[i] <= 0 {
			continue
		}
		// Inferred bases ("*", "und") do not count as a preference
		base, confidence := tag.Base()
		if confidence != language.Exact {
			continue
		}
		if lang := entity.Language(base.String()); r.Supported.Contains(lang) {
			return lang, true
		}
	}

	return "", false
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}

	return path
}

// looksLikeLanguage matches "xx" and "xx-yy" made of ASCII letters.
func looksLikeLanguage(segment string) bool {
	switch len(segment) {
	case 2:
		return isLetters(segment)
	case 5:
		return segment[2] == '-' && isLetters(segment[:2]) && isLetters(segment[3:])
	default:
		return false
	}
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}

	return true
}
