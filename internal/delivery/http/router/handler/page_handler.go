package handler

import (
	"net/http"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/view"
	"koostory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the static marketing pages.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Landing renders the home page with the testimonial list.
func (h *PageHandler) Landing(c echo.Context) error {
	if err := requirePathLanguage(c); err != nil {
		return err
	}

	page := view.NewPage(c, "", entity.Testimonials())
	page.Title = page.T("hero.title")

	return c.Render(http.StatusOK, view.PageLanding, page)
}

// Product renders the product page.
func (h *PageHandler) Product(c echo.Context) error {
	return h.static(c, view.PageProduct, "product.title")
}

// Pricing renders the pricing page.
func (h *PageHandler) Pricing(c echo.Context) error {
	return h.static(c, view.PagePricing, "pricing.title")
}

func (h *PageHandler) static(c echo.Context, name, titleKey string) error {
	if err := requirePathLanguage(c); err != nil {
		return err
	}

	page := view.NewPage(c, "", nil)
	page.Title = page.T(titleKey)

	return c.Render(http.StatusOK, name, page)
}

// requirePathLanguage rejects "/:lang/..." routes whose first segment was not a
// supported language, e.g. "/about" matched as a language parameter.
func requirePathLanguage(c echo.Context) error {
	if c.Param("lang") == "" {
		return nil
	}

	locale := deliverycontext.GetLocale(c)
	if locale == nil || !locale.FromPath {
		return echo.ErrNotFound
	}

	return nil
}
