// Package view renders the site's HTML pages from embedded html/template files.
// Every page is parsed together with the shared layout once, at start.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	"koostory/internal/errors"

	"github.com/labstack/echo/v4"
)

// Page names accepted by Render.
const (
	PageLanding  = "landing"
	PageProduct  = "product"
	PagePricing  = "pricing"
	PageBlogList = "blog_list"
	PageBlogPost = "blog_post"
	PageLogin    = "login"
	PageRegister = "register"
	PageAdminCMS = "admin_cms"
	PageError    = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer.
type Renderer struct {
	pages       map[string]*template.Template
	siteName    string
	defaultLang entity.Language
}

// New parses every page against the layout.
func New(cfg *config.Config) (*Renderer, error) {
	return newRenderer(templateFS, cfg.Site.Name, entity.Language(cfg.I18n.Default))
}

func newRenderer(fsys fs.FS, siteName string, defaultLang entity.Language) (*Renderer, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2006-01-02") },
		// Post bodies come from signed-in authors through the admin CMS
		"trusted": func(s string) template.HTML { return template.HTML(s) },
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}

			return *s
		},
	}

	r := &Renderer{
		pages:       make(map[string]*template.Template, len(files)),
		siteName:    siteName,
		defaultLang: defaultLang,
	}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}

		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, "templates/layout.html", file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render writes the named page. data must be a *Page.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	page, ok := data.(*Page)
	if !ok {
		return errors.Errorf("page %q rendered with %T", name, data)
	}
	page.SiteName = r.siteName
	page.defaultLang = r.defaultLang

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", page))
}

// Page is the data every template receives.
type Page struct {
	Title    string
	Path     string
	User     *entity.User
	Locale   *deliverycontext.Locale
	SiteName string
	// Error is a user-facing message shown above forms.
	Error string
	// Form echoes submitted values back into the form, never passwords.
	Form map[string]string
	// Content is the page-specific payload.
	Content any

	defaultLang entity.Language
}

// NewPage collects the request values every template needs.
func NewPage(c echo.Context, title string, content any) *Page {
	return &Page{
		Title:   title,
		Path:    c.Request().URL.Path,
		User:    deliverycontext.GetUser(c),
		Locale:  deliverycontext.GetLocale(c),
		Content: content,
		Form:    map[string]string{},
	}
}

// T translates key for the request language. Without a locale the key is returned.
func (p *Page) T(key string, pairs ...string) string {
	if p.Locale == nil || p.Locale.Localizer == nil {
		return key
	}

	return p.Locale.Localizer.T(key, pairs...)
}

// Lang is the value of the html lang attribute.
func (p *Page) Lang() string {
	if p.Locale == nil {
		return p.defaultLang.String()
	}

	return p.Locale.Language.String()
}

// Prefix is prepended to internal links so navigation keeps the language the
// visitor arrived with.
func (p *Page) Prefix() string {
	if p.Locale == nil || !p.Locale.FromPath {
		return ""
	}

	return "/" + p.Locale.Language.String()
}

// Year is used in the footer.
func (p *Page) Year() string {
	return strconv.Itoa(time.Now().Year())
}
