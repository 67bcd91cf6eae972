package validator

import (
	"testing"

	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `json:"title" validate:"required,max=5"`
	Slug  string `json:"slug" validate:"required,slug"`
	To    string `json:"to" validate:"omitempty,email"`
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Title: "Hi", Slug: "hello-world-2", To: "a@example.com"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Title: "too long title", Slug: "Bad Slug", To: "nope"})
	require.Error(t, err)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "title must be at most 5 characters")
	assert.Contains(t, appErr.Details(), "slug must contain only lowercase letters, digits and hyphens")
	assert.Contains(t, appErr.Details(), "to must be a valid email address")
}

func TestValidate_Required(t *testing.T) {
	err := New().Validate(&sample{})
	require.Error(t, err)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "title is required")
	assert.Contains(t, appErr.Details(), "slug is required")
}
