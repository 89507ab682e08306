package models

import "time"

// User is an account created at registration or on first OAuth login.
// OAuth-provisioned accounts share the row shape, with Provider naming the
// upstream identity provider and an empty password hash. Users are never
// hard-deleted.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password        string    `gorm:"size:255" json:"-"`
	Nickname        *string   `gorm:"size:50" json:"nickname"`
	ProfileImageURL *string   `gorm:"size:500" json:"profile_image_url"`
	Provider        string    `gorm:"size:50;default:'email'" json:"provider"`
	HasSetNickname  bool      `gorm:"default:false" json:"has_set_nickname"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
