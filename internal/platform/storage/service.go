package storage

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/s3/v2"

	"proptrack/pkg/utils"
)

// Service defines methods for file storage operations
type Service interface {
	// SaveFile saves a file to the storage
	SaveFile(file *multipart.FileHeader, path string, c *fiber.Ctx) error

	// IsFileExtensionAllowed checks if file extension is allowed
	IsFileExtensionAllowed(filename string) bool

	// GenerateKeyName generates a random key name for file storage
	GenerateKeyName() string
}

type service struct {
	storage *s3.Storage
}

func NewService(storage *s3.Storage) Service {
	return &service{
		storage: storage,
	}
}

func (s *service) SaveFile(file *multipart.FileHeader, path string, c *fiber.Ctx) error {
	return c.SaveFileToStorage(file, path, s.storage)
}

func (s *service) IsFileExtensionAllowed(filename string) bool {
	allowedExtensions := []string{"jpg", "jpeg", "png", "webp"}
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(strings.ToLower(filename), ext) {
			return true
		}
	}
	return false
}

func (s *service) GenerateKeyName() string {
	return strings.ToLower(utils.GenerateRandomString(16))
}
