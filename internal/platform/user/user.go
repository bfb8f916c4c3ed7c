package user

import (
	"errors"
	"time"

	"github.com/go-playground/validator"
	"gorm.io/gorm"

	"proptrack/internal/database"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmailTaken   = errors.New("email already taken")
)

var validate = validator.New()

type UserService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create persists a new user. The email is checked for format before the
// store is touched; uniqueness violations surface as ErrEmailTaken.
func (s *UserService) Create(user *database.User) error {
	if err := validate.Var(user.Email, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	result := s.db.Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return result.Error
	}

	return nil
}

func (s *UserService) GetUserByID(userID string) (*database.User, error) {
	var user database.User
	result := s.db.First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) GetUserByEmail(email string) (*database.User, error) {
	var user database.User
	result := s.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// TouchLastLogin records activity for the user. Callers treat failures as
// non-fatal.
func (s *UserService) TouchLastLogin(userID string) error {
	return s.db.Model(&database.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).Error
}

func (s *UserService) SetAvatar(userID string, key string) error {
	return s.db.Model(&database.User{}).
		Where("id = ?", userID).
		Update("avatar", key).Error
}

func (s *UserService) Save(user *database.User) error {
	return s.db.Save(user).Error
}
