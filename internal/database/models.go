package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proptrack/pkg/utils"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:21;<-:create"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Firstname *string   `json:"firstname"`
	Lastname  *string   `json:"lastname"`
	Role      *string   `json:"role"`
	Country   *string   `json:"country"`
	Phone     *string   `json:"phone"`
	Avatar    *string   `json:"avatar"`
	LastLogin time.Time `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.GenerateID()
	}
	return nil
}

func (u *User) TableName() string {
	return "users"
}

type Property struct {
	ID               string    `json:"id" gorm:"primaryKey;<-:create"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	NumberOfUnits    int       `json:"numberOfUnits"`
	ConstructionYear int       `json:"constructionYear"`
	CurrentValue     float64   `json:"currentValue"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	Street           string    `json:"street"`
	Postcode         string    `json:"postcode"`
	State            string    `json:"state"`
	CreatedBy        string    `json:"createdBy" gorm:"index;<-:create"`
	CreatedAt        time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Property) TableName() string {
	return "properties"
}

// AccessToken is an opaque bearer credential resolved by the auth gate.
// Issuance happens outside the HTTP surface.
type AccessToken struct {
	Token  string `json:"token" gorm:"primaryKey"`
	UserID string `json:"userId" gorm:"size:21;index"`
	// ExpiredAt is the moment the token stops being accepted. The zero
	// value means the token never expires.
	ExpiredAt time.Time `json:"expiredAt"`
}

func (t *AccessToken) TableName() string {
	return "access_tokens"
}
