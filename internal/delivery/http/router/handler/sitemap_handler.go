package handler

import (
	"net/http"

	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SitemapHandler serves /sitemap.xml.
type SitemapHandler struct {
	uc usecase.SitemapUsecase
}

// NewSitemapHandler is the constructor for SitemapHandler, injected by Fx.
func NewSitemapHandler(uc usecase.SitemapUsecase) *SitemapHandler {
	return &SitemapHandler{uc: uc}
}

// Sitemap writes the XML document.
func (h *SitemapHandler) Sitemap(c echo.Context) error {
	doc, err := h.uc.Build(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "max-age=0, s-maxage=3600")

	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, doc)
}
