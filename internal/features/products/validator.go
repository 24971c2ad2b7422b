package products

import (
	"errors"
	"unicode/utf8"

	"github.com/xyz-asif/skincare/internal/pkg/validator"
)

const minNameLength = 2

func validateName(name string) error {
	if utf8.RuneCountInString(name) < minNameLength || validator.IsBlank(name) {
		return errors.New("name must be at least 2 characters")
	}
	return nil
}

func ValidateCreateProduct(req *CreateProductRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if validator.IsBlank(req.Brand) {
		return errors.New("brand is required")
	}
	if validator.IsBlank(req.Category) {
		return errors.New("category is required")
	}
	if req.Price <= 0 {
		return errors.New("price must be greater than 0")
	}
	return nil
}

// ValidateUpdateProduct checks only the fields that are present.
func ValidateUpdateProduct(req *UpdateProductRequest) error {
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Brand != nil && validator.IsBlank(*req.Brand) {
		return errors.New("brand must not be empty")
	}
	if req.Category != nil && validator.IsBlank(*req.Category) {
		return errors.New("category must not be empty")
	}
	if req.Price != nil && *req.Price <= 0 {
		return errors.New("price must be greater than 0")
	}
	return nil
}
