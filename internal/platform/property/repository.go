package property

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"proptrack/internal/database"
)

var (
	ErrNotFound     = errors.New("property not found")
	ErrUserNotFound = errors.New("user not found")
)

// updatableColumns maps request-body keys to their store columns. Partial
// updates apply only keys present here; anything else is dropped.
var updatableColumns = map[string]string{
	"name":             "name",
	"type":             "type",
	"numberOfUnits":    "number_of_units",
	"constructionYear": "construction_year",
	"currentValue":     "current_value",
	"city":             "city",
	"country":          "country",
	"street":           "street",
	"postcode":         "postcode",
	"state":            "state",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(property *database.Property) error {
	return r.db.Create(property).Error
}

// List returns all properties, newest first.
func (r *Repository) List() ([]database.Property, error) {
	var properties []database.Property
	result := r.db.Order("created_at DESC").Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}
	return properties, nil
}

func (r *Repository) GetByID(id string) (*database.Property, error) {
	var property database.Property
	result := r.db.First(&property, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &property, nil
}

// Update applies the given column updates to the property row and reloads
// the record. An empty update set is a no-op.
func (r *Repository) Update(property *database.Property, updates map[string]any) error {
	if len(updates) > 0 {
		result := r.db.Model(property).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
	}

	return r.db.First(property, "id = ?", property.ID).Error
}

// GetUserTotalValue sums current_value over all properties created by the
// given email. An email matching no user yields ErrUserNotFound; a known
// user without properties yields 0.
func (r *Repository) GetUserTotalValue(email string) (float64, error) {
	var count int64
	if err := r.db.Model(&database.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrUserNotFound
	}

	var total float64
	err := r.db.Model(&database.Property{}).
		Where("created_by = ?", email).
		Select("COALESCE(SUM(current_value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// FilterUpdates intersects a raw request body with the updatable-column
// allow-list. It returns the column updates and the sorted list of accepted
// request keys.
func FilterUpdates(body map[string]any) (map[string]any, []string) {
	updates := make(map[string]any)
	var accepted []string

	for key, value := range body {
		column, ok := updatableColumns[key]
		if !ok {
			continue
		}
		updates[column] = value
		accepted = append(accepted, key)
	}

	sort.Strings(accepted)

	return updates, accepted
}
