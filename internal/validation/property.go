// Package validation provides the payload-checking pipeline stages. Each
// stage parses and validates the request body, stores the typed payload in
// the request locals, and short-circuits with a validation error before the
// handler runs on failure.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"proptrack/internal/response"
)

// LocalsPropertyCreate holds the parsed PropertyCreateInput for the create
// handler.
const LocalsPropertyCreate = "property_create_input"

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type PropertyCreateInput struct {
	Name             string   `json:"name" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	NumberOfUnits    *int     `json:"numberOfUnits" validate:"required,gte=0"`
	ConstructionYear *int     `json:"constructionYear" validate:"required,gte=1000,lte=2999"`
	CurrentValue     *float64 `json:"currentValue" validate:"required,gte=0"`
	City             string   `json:"city" validate:"required"`
	Country          string   `json:"country" validate:"required"`
	Street           string   `json:"street" validate:"required"`
	Postcode         string   `json:"postcode" validate:"required"`
	State            string   `json:"state" validate:"required"`
}

type PropertyUpdateInput struct {
	Name             *string  `json:"name" validate:"omitempty,min=1"`
	Type             *string  `json:"type" validate:"omitempty,min=1"`
	NumberOfUnits    *int     `json:"numberOfUnits" validate:"omitempty,gte=0"`
	ConstructionYear *int     `json:"constructionYear" validate:"omitempty,gte=1000,lte=2999"`
	CurrentValue     *float64 `json:"currentValue" validate:"omitempty,gte=0"`
	City             *string  `json:"city" validate:"omitempty,min=1"`
	Country          *string  `json:"country" validate:"omitempty,min=1"`
	Street           *string  `json:"street" validate:"omitempty,min=1"`
	Postcode         *string  `json:"postcode" validate:"omitempty,min=1"`
	State            *string  `json:"state" validate:"omitempty,min=1"`
}

func PropertyCreate(c *fiber.Ctx) error {
	var input PropertyCreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.NewValidation("Invalid request body", nil)
	}

	if err := validate.Struct(input); err != nil {
		return response.NewValidation("Validation failed", fieldErrors(err))
	}

	c.Locals(LocalsPropertyCreate, input)

	return c.Next()
}

func PropertyUpdate(c *fiber.Ctx) error {
	var input PropertyUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.NewValidation("Invalid request body", nil)
	}

	if err := validate.Struct(input); err != nil {
		return response.NewValidation("Validation failed", fieldErrors(err))
	}

	return c.Next()
}

func fieldErrors(err error) []response.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make([]response.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, response.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()),
		})
	}

	return fields
}
