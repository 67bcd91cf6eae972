package handler

import (
	"log/slog"
	"net/http"

	"koostory/internal/delivery/http/view"
	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BlogHandler serves the public blog pages.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List renders published posts, newest first.
func (h *BlogHandler) List(c echo.Context) error {
	if err := requirePathLanguage(c); err != nil {
		return err
	}

	posts, err := h.uc.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	page := view.NewPage(c, "", posts)
	page.Title = page.T("blog.title")

	return c.Render(http.StatusOK, view.PageBlogList, page)
}

// Post renders one published post. Drafts and unknown slugs are 404.
func (h *BlogHandler) Post(c echo.Context) error {
	if err := requirePathLanguage(c); err != nil {
		return err
	}

	post, err := h.uc.GetPublishedBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, view.PageBlogPost, view.NewPage(c, post.Title, post))
}
