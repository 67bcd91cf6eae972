package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/response"
	"koostory/internal/delivery/http/view"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler serves the CMS page and its JSON API. Both sit behind the session
// guard; the API group additionally answers 401 instead of redirecting.
type AdminHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.BlogUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Index sends /admin to the CMS.
func (h *AdminHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/admin/cms")
}

// CMS lists every post, drafts included.
func (h *AdminHandler) CMS(c echo.Context) error {
	posts, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	page := view.NewPage(c, "", posts)
	page.Title = page.T("admin.title")

	return c.Render(http.StatusOK, view.PageAdminCMS, page)
}

// CreatePost handles POST /api/admin/blog.
func (h *AdminHandler) CreatePost(c echo.Context) error {
	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidJSON)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), deliverycontext.GetUser(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Post(c, http.StatusOK, newPostResponse(post))
}

// UpdatePost handles PUT /api/admin/blog/:id.
func (h *AdminHandler) UpdatePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrPostNotFound.ErrorCode(), domainerrors.ErrPostNotFound.Message())
	}

	var input usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidJSON)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Post(c, http.StatusOK, newPostResponse(post))
}

// DeletePost handles DELETE /api/admin/blog/:id.
func (h *AdminHandler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrPostNotFound.ErrorCode(), domainerrors.ErrPostNotFound.Message())
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}
