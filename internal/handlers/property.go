package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"proptrack/internal/database"
	"proptrack/internal/middleware"
	"proptrack/internal/platform/property"
	"proptrack/internal/response"
	"proptrack/internal/validation"
)

type PropertyHandler struct {
	repo *property.Repository
	log  zerolog.Logger
}

func NewPropertyHandler(repo *property.Repository, log zerolog.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, log: log}
}

// Create builds a property from the validated payload. CreatedBy always
// comes from the authenticated identity, never from the request body.
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	authUser := middleware.AuthUser(c)
	input := c.Locals(validation.LocalsPropertyCreate).(validation.PropertyCreateInput)

	prop := database.Property{
		Name:             input.Name,
		Type:             input.Type,
		NumberOfUnits:    *input.NumberOfUnits,
		ConstructionYear: *input.ConstructionYear,
		CurrentValue:     *input.CurrentValue,
		City:             input.City,
		Country:          input.Country,
		Street:           input.Street,
		Postcode:         input.Postcode,
		State:            input.State,
		CreatedBy:        authUser.Email,
	}

	if err := h.repo.Create(&prop); err != nil {
		h.log.Error().Err(err).Msg("Failed to create property")
		return response.NewInternal(err)
	}

	h.log.Info().Str("propertyId", prop.ID).Msg("Property created successfully")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Property created successfully",
		"property": prop,
	})
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.repo.List()
	if err != nil {
		return response.NewInternal(err)
	}

	return c.JSON(properties)
}

func (h *PropertyHandler) GetTotalValue(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("userEmail"))
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "User email is required",
		})
	}

	total, err := h.repo.GetUserTotalValue(email)
	if err != nil {
		if errors.Is(err, property.ErrUserNotFound) {
			return response.NewNotFound("User not found", fiber.Map{"userEmail": email})
		}
		return response.NewInternal(err)
	}

	return c.JSON(fiber.Map{
		"userEmail":  email,
		"totalValue": total,
	})
}

func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	prop, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return response.NewNotFound("Property not found", fiber.Map{"propertyId": id})
		}
		return response.NewInternal(err)
	}

	return c.JSON(prop)
}

// Update applies a partial update. Body keys outside the updatable
// allow-list are dropped silently.
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	prop, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return response.NewNotFound("Property not found", fiber.Map{"propertyId": id})
		}
		return response.NewInternal(err)
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return response.NewValidation("Invalid request body", nil)
	}

	updates, updatedFields := property.FilterUpdates(body)

	if err := h.repo.Update(prop, updates); err != nil {
		h.log.Error().Err(err).Str("propertyId", id).Msg("Failed to update property")
		return response.NewInternal(err)
	}

	h.log.Info().
		Str("propertyId", prop.ID).
		Strs("updatedFields", updatedFields).
		Msg("Property updated successfully")

	return c.JSON(fiber.Map{
		"message":  "Property updated successfully",
		"property": prop,
	})
}
