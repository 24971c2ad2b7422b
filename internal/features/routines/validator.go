package routines

import (
	"errors"
	"strconv"

	"github.com/xyz-asif/skincare/internal/pkg/validator"
)

const (
	defaultTopBrandsLimit = 5
	maxTopBrandsLimit     = 50
)

func ValidateCreateRoutine(req *CreateRoutineRequest) error {
	if validator.IsBlank(req.Name) {
		return errors.New("name must not be empty")
	}
	if !validator.IsValidEmail(req.UserEmail) {
		return errors.New("user_email must be a valid email address")
	}
	return nil
}

func ValidateAddStep(req *AddStepRequest) error {
	if validator.IsBlank(req.Name) {
		return errors.New("name must not be empty")
	}
	if validator.IsBlank(req.Brand) {
		return errors.New("brand must not be empty")
	}
	return nil
}

func ValidateRemoveStep(req *RemoveStepRequest) error {
	if validator.IsBlank(req.ProductName) {
		return errors.New("product_name must not be empty")
	}
	return nil
}

// ParseTopBrandsLimit reads the ?limit query value. Empty means the default.
func ParseTopBrandsLimit(raw string) (int, error) {
	if raw == "" {
		return defaultTopBrandsLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxTopBrandsLimit {
		return 0, errors.New("limit must be an integer between 1 and 50")
	}
	return limit, nil
}
