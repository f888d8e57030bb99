package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("icon", "gummies")
	require.EqualError(t, err, `icon not found: "gummies"`)

	var nf *NotFoundError
	require.True(t, stdErrors.As(err, &nf))
	require.Equal(t, "gummies", nf.Key)
}

func TestCapabilityErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewCapabilityError("raster", "renderer not linked in")
	require.EqualError(t, err, "capability raster unavailable: renderer not linked in")

	bare := NewCapabilityError("raster", "")
	require.EqualError(t, bare, "capability raster unavailable")
}

func TestInvalidColorErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewInvalidColorError("bluish")
	require.EqualError(t, err, `invalid color: "bluish"`)

	var ic *InvalidColorError
	require.True(t, stdErrors.As(err, &ic))
	require.Equal(t, "bluish", ic.Value)
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("manifest.json", 12, underlying)

	var parseErr *ParseError
	require.True(t, stdErrors.As(err, &parseErr))
	require.Equal(t, "manifest.json", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "manifest.json:12")
}

func TestValidationErrorFieldFormatting(t *testing.T) {
	t.Parallel()

	err := NewValidationError("icons.tablets.slots[0].role", "unknown role", nil)
	require.Contains(t, err.Error(), "icons.tablets.slots[0].role")

	bare := NewValidationError("", "manifest is nil", nil)
	require.EqualError(t, bare, "validation error: manifest is nil")
}

func TestTaskErrorWrapsRootCause(t *testing.T) {
	t.Parallel()

	root := NewNotFoundError("icon", "nope")
	err := NewTaskError("nope", root)

	var taskErr *TaskError
	require.True(t, stdErrors.As(err, &taskErr))
	require.Equal(t, "nope", taskErr.Icon)

	var nf *NotFoundError
	require.True(t, stdErrors.As(err, &nf))
}
