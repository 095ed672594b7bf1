package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/laundrahub/admin-service/pkg/util"
)

var validate = validator.New()

// Validate runs struct tag validation and maps failures onto the shared
// error shape, keyed by field.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return util.NewValidationError("invalid request body", nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return util.NewValidationError("validation failed", details)
}

// ListResponse is the paginated envelope every collection endpoint returns.
type ListResponse[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

// NewListResponse wraps a page of results, normalizing nil slices so the
// JSON always carries an array.
func NewListResponse[T any](results []T, count int64) ListResponse[T] {
	if results == nil {
		results = []T{}
	}
	return ListResponse[T]{Count: count, Results: results}
}
