package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewAppError(ErrTypeParsing, "bad sheet", nil),
			expected: "[PARSING] bad sheet",
		},
		{
			name:     "with cause",
			err:      NewAppError(ErrTypeStorage, "read failed", io.ErrUnexpectedEOF),
			expected: "[STORAGE] read failed: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewUnreadableFileError(cause)

	assert.True(t, errors.Is(err, cause))

	var app *AppError
	require.True(t, errors.As(err, &app))
	assert.Equal(t, ErrTypeStorage, app.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewParsingError("bad row", nil).WithContext("row", 7)
	assert.Equal(t, 7, err.Context["row"])
}

func TestMissingColumnsError(t *testing.T) {
	err := NewMissingColumnsError([]string{"Dean", "Campus"})
	assert.Contains(t, err.Error(), "Dean")
	assert.Contains(t, err.Error(), "Campus")

	wrapped := fmt.Errorf("parse sheet: %w", err)
	mc, ok := IsMissingColumns(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"Dean", "Campus"}, mc.Columns)
}

func TestErrEmptyWorkbook(t *testing.T) {
	wrapped := fmt.Errorf("open workbook: %w", ErrEmptyWorkbook)
	assert.True(t, errors.Is(wrapped, ErrEmptyWorkbook))
}
