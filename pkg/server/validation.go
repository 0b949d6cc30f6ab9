package server

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/cubestats/analytics/pkg/api"
)

func NewValidator() (*validator.Validate, error) {
	validate := validator.New()

	// Verify that the input is one of the supported share type codes.
	if err := validate.RegisterValidation("shareType", func(fl validator.FieldLevel) bool {
		switch int(fl.Field().Int()) {
		case api.ShareTypeUser, api.ShareTypeGroup, api.ShareTypeUserGroup, api.ShareTypeLink, api.ShareTypeRoom:
			return true
		default:
			return false
		}
	}); err != nil {
		return nil, err
	}

	// Verify that the input string is a positive integer.
	if err := validate.RegisterValidation("positiveInteger", func(fl validator.FieldLevel) bool {
		value, err := strconv.Atoi(fl.Field().String())
		if err != nil {
			return false
		}

		return value > 0
	}); err != nil {
		return nil, err
	}

	return validate, nil
}
