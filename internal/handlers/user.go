package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"proptrack/internal/database"
	"proptrack/internal/middleware"
	"proptrack/internal/platform/storage"
	"proptrack/internal/platform/user"
	"proptrack/internal/response"
)

type UserHandler struct {
	users   *user.UserService
	storage storage.Service
	log     zerolog.Logger
}

func NewUserHandler(users *user.UserService, storage storage.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, storage: storage, log: log}
}

func (h *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	return c.JSON(middleware.AuthUser(c))
}

func (h *UserHandler) UpdateCurrentUser(c *fiber.Ctx) error {
	authUser := middleware.AuthUser(c)

	var input database.User
	if err := c.BodyParser(&input); err != nil {
		return response.NewValidation("Invalid request body", nil)
	}

	updateNullableString := func(target **string, value *string) {
		if value != nil {
			if *value != "" {
				*target = value
			} else {
				*target = nil
			}
		}
	}

	updateNullableString(&authUser.Firstname, input.Firstname)
	updateNullableString(&authUser.Lastname, input.Lastname)
	updateNullableString(&authUser.Country, input.Country)
	updateNullableString(&authUser.Phone, input.Phone)
	updateNullableString(&authUser.Avatar, input.Avatar)

	if err := h.users.Save(&authUser); err != nil {
		h.log.Error().Err(err).Str("userId", authUser.ID).Msg("Failed to update user")
		return response.NewInternal(err)
	}

	return c.JSON(authUser)
}

// UploadAvatar stores the uploaded image and points the user's avatar field
// at the stored object key.
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	authUser := middleware.AuthUser(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		return response.NewValidation("Avatar file is required", nil)
	}

	if !h.storage.IsFileExtensionAllowed(file.Filename) {
		return response.NewValidation("File type not allowed", nil)
	}

	key := fmt.Sprintf("avatars/%s", h.storage.GenerateKeyName())
	if err := h.storage.SaveFile(file, key, c); err != nil {
		h.log.Error().Err(err).Str("userId", authUser.ID).Msg("Failed to store avatar")
		return response.NewInternal(err)
	}

	if err := h.users.SetAvatar(authUser.ID, key); err != nil {
		return response.NewInternal(err)
	}

	return c.JSON(fiber.Map{"avatar": key})
}
