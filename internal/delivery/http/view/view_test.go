package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLocalizer struct {
	lang     entity.Language
	messages map[string]string
}

func (l mapLocalizer) Language() entity.Language { return l.lang }

func (l mapLocalizer) T(key string, pairs ...string) string {
	msg, ok := l.messages[key]
	if !ok {
		return key
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+pairs[i]+"}", pairs[i+1])
	}

	return msg
}

func newTestContext(t *testing.T, path string) echo.Context {
	t.Helper()

	e := echo.New()

	return e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := newRenderer(templateFS, "Koostory", entity.LanguageEnglish)
	require.NoError(t, err)

	return r
}

func TestRenderer_ParsesEveryPage(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range []string{
		PageLanding, PageProduct, PagePricing, PageBlogList, PageBlogPost,
		PageLogin, PageRegister, PageAdminCMS, PageError,
	} {
		assert.Contains(t, r.pages, name)
	}
	assert.NotContains(t, r.pages, "layout")
}

func TestRenderer_LandingUsesRequestLocale(t *testing.T) {
	r := newTestRenderer(t)
	c := newTestContext(t, "/ko")
	deliverycontext.SetLocale(c, &deliverycontext.Locale{
		Language: entity.LanguageKorean,
		FromPath: true,
		Localizer: mapLocalizer{lang: entity.LanguageKorean, messages: map[string]string{
			"hero.title":  "요구사항",
			"footer.copy": "© {year} {name}",
		}},
	})

	page := NewPage(c, "", []entity.Testimonial{{Quote: "<b>great</b>", Name: "Maria L.", Title: "Startup Founder"}})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageLanding, page, c))

	html := buf.String()
	assert.Contains(t, html, `<html lang="ko">`)
	assert.Contains(t, html, "요구사항")
	assert.Contains(t, html, `href="/ko/blog"`)
	assert.Contains(t, html, "&lt;b&gt;great&lt;/b&gt;")
	assert.Contains(t, html, "Koostory")
	assert.Contains(t, html, "Maria L.")
}

func TestRenderer_BlogPostRendersAuthoredHTML(t *testing.T) {
	r := newTestRenderer(t)
	c := newTestContext(t, "/blog/hello")

	post := &entity.Post{
		ID:          uuid.New(),
		Title:       "Hello <world>",
		Slug:        "hello",
		Content:     "<p>Body</p>",
		AuthorEmail: "author@example.com",
		CreatedAt:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageBlogPost, NewPage(c, post.Title, post), c))

	html := buf.String()
	assert.Contains(t, html, "<p>Body</p>")
	assert.Contains(t, html, "Hello &lt;world&gt;")
	assert.Contains(t, html, `<html lang="en">`)
}

func TestRenderer_LoginKeepsRedirectEscaped(t *testing.T) {
	r := newTestRenderer(t)
	c := newTestContext(t, "/login")

	page := NewPage(c, "Log in", nil)
	page.Form["redirect"] = "/admin/cms"
	page.Form["email"] = "a@example.com"
	page.Error = "Invalid email or password"

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageLogin, page, c))

	html := buf.String()
	assert.Contains(t, html, "redirect=%2fadmin%2fcms")
	assert.Contains(t, html, `value="a@example.com"`)
	assert.Contains(t, html, "Invalid email or password")
}

func TestRenderer_RejectsUnknownPageAndData(t *testing.T) {
	r := newTestRenderer(t)
	c := newTestContext(t, "/")

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing", NewPage(c, "", nil), c))
	assert.Error(t, r.Render(&buf, PageLanding, map[string]string{}, c))
}

func TestPage_WithoutLocaleFallsBackToKeys(t *testing.T) {
	page := &Page{defaultLang: entity.LanguageEnglish}

	assert.Equal(t, "nav.home", page.T("nav.home"))
	assert.Equal(t, "en", page.Lang())
	assert.Empty(t, page.Prefix())
}
