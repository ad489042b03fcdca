package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
	"github.com/shelflogapp/shelflog-server/internal/validation"
)

type testForm struct {
	Title    string `form:"title" validate:"required,max=500"`
	Rating   int    `form:"rating" validate:"required,gte=1,lte=5"`
	DateRead string `form:"date_read" validate:"required,datetime=2006-01-02"`
}

func TestValidator_Success(t *testing.T) {
	v := validation.New()

	err := v.Validate(testForm{
		Title:    "Dune",
		Rating:   5,
		DateRead: "2024-01-01",
	})
	assert.NoError(t, err)
}

func TestValidator_Errors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		form    testForm
		wantMsg string
	}{
		{
			name:    "missing title",
			form:    testForm{Rating: 5, DateRead: "2024-01-01"},
			wantMsg: "title is required",
		},
		{
			name:    "rating out of range",
			form:    testForm{Title: "Dune", Rating: 6, DateRead: "2024-01-01"},
			wantMsg: "rating must be less than or equal to 5",
		},
		{
			name:    "bad date",
			form:    testForm{Title: "Dune", Rating: 5, DateRead: "January 1st"},
			wantMsg: "date_read must be a date in 2006-01-02 format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidator_CollectsAllFields(t *testing.T) {
	v := validation.New()

	err := v.Validate(testForm{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "rating is required")
	assert.Contains(t, err.Error(), "date_read is required")
}
