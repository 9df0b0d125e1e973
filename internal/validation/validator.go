package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/it23631960/pearl-logistics-admin/internal/models"
)

// New returns a configured validator with the order_status rule registered
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// order_status accepts only values from the closed status set
	_ = v.RegisterValidation("order_status", func(fl validatorv10.FieldLevel) bool {
		return models.IsValidOrderStatus(fl.Field().String())
	})

	return v
}
