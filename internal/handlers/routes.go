package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"proptrack/internal/middleware"
	"proptrack/internal/platform/property"
	"proptrack/internal/platform/storage"
	"proptrack/internal/platform/user"
	"proptrack/internal/validation"
)

// Register wires the API routes. Each route lists its pipeline stages in
// execution order: auth gate, last-login touch, payload validation, handler.
//
// The total-value route is registered before the id route so the literal
// segment wins over the parameter.
func Register(app *fiber.App, db *gorm.DB, store storage.Service, log zerolog.Logger) {
	users := user.NewService(db)
	properties := property.NewRepository(db)

	propertyHandler := NewPropertyHandler(properties, log)
	userHandler := NewUserHandler(users, store, log)

	requireAuth := middleware.RequireAuth(db)
	touchLastLogin := middleware.TouchLastLogin(users, log)

	api := app.Group("/api")

	props := api.Group("/properties")
	props.Post("/", requireAuth, touchLastLogin, validation.PropertyCreate, propertyHandler.Create)
	props.Get("/", requireAuth, touchLastLogin, propertyHandler.List)
	props.Get("/total-value", propertyHandler.GetTotalValue)
	props.Get("/:id", propertyHandler.GetByID)
	props.Patch("/:id", validation.PropertyUpdate, propertyHandler.Update)

	me := api.Group("/user", requireAuth)
	me.Get("/me", userHandler.GetCurrentUser)
	me.Put("/me", userHandler.UpdateCurrentUser)
	me.Post("/me/avatar", userHandler.UploadAvatar)
}
