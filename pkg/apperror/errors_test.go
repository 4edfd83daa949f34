package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filterQuery struct {
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CashierID string `form:"cashier_id" validate:"omitempty,numeric"`
	Category  string `form:"category" validate:"omitempty,max=3"`
}

func TestFromBindingError(t *testing.T) {
	bad := filterQuery{StartDate: "03/01/2024", CashierID: "abc", Category: "Dairy"}
	want := []FieldError{
		{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"},
		{Field: "cashier_id", Message: "must be numeric"},
		{Field: "category", Message: "must be at most 3 characters"},
	}

	t.Run("form tag names", func(t *testing.T) {
		v := validator.New()
		v.RegisterTagNameFunc(FormFieldName)

		appErr := FromBindingError(v.Struct(bad))
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		assert.Equal(t, want, appErr.Errors)
	})

	t.Run("go field names", func(t *testing.T) {
		appErr := FromBindingError(validator.New().Struct(bad))
		assert.Equal(t, want, appErr.Errors)
	})

	t.Run("not a validation error", func(t *testing.T) {
		appErr := FromBindingError(errors.New("strconv.ParseInt: invalid syntax"))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Invalid query parameters", appErr.Message)
		assert.Empty(t, appErr.Errors)
	})
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"CashierID":  "cashier_id",
		"StartDate":  "start_date",
		"HTTPStatus": "http_status",
		"Category":   "category",
		"Top10Items": "top10_items",
		"end_date":   "end_date",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnakeCase(in), in)
	}
}

func TestGetAppError(t *testing.T) {
	assert.Same(t, ErrNotFound, GetAppError(ErrNotFound))

	wrapped := GetAppError(errors.Join(errors.New("context"), NewBadGatewayError("upstream down")))
	assert.Equal(t, http.StatusBadGateway, wrapped.Code)

	plain := GetAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, plain.Code)
	assert.Equal(t, "boom", plain.Message)
}
