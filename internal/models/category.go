package models

// Category is static reference data, seeded once at boot.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:100" json:"name"`
	Slug        string `gorm:"not null;size:100;uniqueIndex" json:"slug"`
	Description string `gorm:"size:500" json:"description"`
}
