package policy

import (
	"testing"

	"koostory/config"
	"koostory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testGuard() Guard {
	return Guard{ProtectedPrefix: "/admin", LoginPath: "/login"}
}

func testResolver() LocaleResolver {
	return LocaleResolver{
		Supported: entity.Languages{entity.LanguageEnglish, entity.LanguageKorean},
		Default:   entity.LanguageEnglish,
	}
}

func TestGuard_Authorize(t *testing.T) {
	user := &entity.User{ID: "u1", Email: "a@example.com"}

	tests := []struct {
		name string
		path string
		user *entity.User
		want Decision
	}{
		{name: "anonymous on cms", path: "/admin/cms", want: RedirectTo("/login?redirect=%2Fadmin%2Fcms")},
		{name: "anonymous on prefix", path: "/admin", want: RedirectTo("/login?redirect=%2Fadmin")},
		{name: "user on cms", path: "/admin/cms", user: user, want: Allow()},
		{name: "public blog", path: "/blog", want: Allow()},
		{name: "lookalike prefix", path: "/administrator", want: Allow()},
		{name: "landing", path: "/", want: Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testGuard().Authorize(tt.path, tt.user))
		})
	}
}

func TestGuard_EmptyPrefixProtectsNothing(t *testing.T) {
	assert.True(t, Guard{LoginPath: "/login"}.Authorize("/admin", nil).Allowed())
}

func TestIsDevToolsProbe(t *testing.T) {
	assert.True(t, IsDevToolsProbe("/.well-known/appspecific/com.chrome.devtools.json"))
	assert.False(t, IsDevToolsProbe("/.well-known/security.txt"))
	assert.False(t, IsDevToolsProbe("/admin"))
}

func TestLocaleResolver_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		header       string
		explicit     string
		wantLang     entity.Language
		wantFromPath bool
		wantDecision Decision
	}{
		{name: "path ko", path: "/ko/blog", header: "en-US", wantLang: "ko", wantFromPath: true, wantDecision: Allow()},
		{name: "path en", path: "/en", wantLang: "en", wantFromPath: true, wantDecision: Allow()},
		{name: "path uppercase", path: "/KO", wantLang: "ko", wantFromPath: true, wantDecision: Allow()},
		{name: "unsupported code", path: "/xx/blog", header: "ko-KR", wantDecision: NotFound()},
		{name: "unsupported region code", path: "/ko-kr", wantDecision: NotFound()},
		{name: "root korean browser", path: "/", header: "ko-KR,ko;q=0.9,en;q=0.8", wantLang: "ko", wantDecision: RedirectTo("/ko")},
		{name: "root english browser", path: "/", header: "en-US,en;q=0.9", wantLang: "en", wantDecision: Allow()},
		{name: "root weighted", path: "/", header: "de;q=1.0,en;q=0.5,ko;q=0.9", wantLang: "ko", wantDecision: RedirectTo("/ko")},
		{name: "root unsupported only", path: "/", header: "de-DE", wantLang: "en", wantDecision: Allow()},
		{name: "root wildcard", path: "/", header: "*", wantLang: "en", wantDecision: Allow()},
		{name: "root garbage header", path: "/", header: ";;;", wantLang: "en", wantDecision: Allow()},
		{name: "header ignored off root", path: "/blog", header: "ko-KR", wantLang: "en", wantDecision: Allow()},
		{name: "explicit wins over header", path: "/", header: "ko-KR", explicit: "en", wantLang: "en", wantDecision: Allow()},
		{name: "explicit wins over path", path: "/en/blog", explicit: "ko", wantLang: "ko", wantFromPath: true, wantDecision: Allow()},
		{name: "explicit unsupported ignored", path: "/ko", explicit: "fr", wantLang: "ko", wantFromPath: true, wantDecision: Allow()},
		{name: "explicit cannot rescue bad segment", path: "/xx", explicit: "ko", wantDecision: NotFound()},
		{name: "plain page", path: "/pricing", wantLang: "en", wantDecision: Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, decision := testResolver().Resolve(tt.path, tt.header, tt.explicit)

			assert.Equal(t, tt.wantDecision, decision)
			if decision.Kind == KindNotFound {
				return
			}
			assert.Equal(t, tt.wantLang, res.Language)
			assert.Equal(t, tt.wantFromPath, res.FromPath)
		})
	}
}

func TestNewLocaleResolver_FromConfig(t *testing.T) {
	cfg := &config.Config{I18n: &config.I18nConfig{Default: "EN", Supported: []string{"en", " ko ", "en"}}}

	r := NewLocaleResolver(cfg)

	assert.Equal(t, entity.LanguageEnglish, r.Default)
	assert.Equal(t, entity.Languages{"en", "ko"}, r.Supported)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "allow", KindAllow.String())
	assert.Equal(t, "redirect", KindRedirect.String())
	assert.Equal(t, "not_found", KindNotFound.String())
}
