package models

import "time"

// Project is a showcased work posted by a user. Removal flips IsActive
// instead of deleting the row, so likes and comments keep valid references.
// LikeCount and CommentCount are denormalized counters maintained on every
// mutating operation, never recomputed on read.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null;size:200" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Content      *string   `gorm:"type:text" json:"content"`
	ImageURL     *string   `gorm:"size:500" json:"image_url"`
	VideoURL     *string   `gorm:"size:500" json:"video_url"`
	DemoURL      *string   `gorm:"size:500" json:"demo_url"`
	ContactInfo  *string   `gorm:"size:255" json:"contact_info"`
	CategoryID   *uint     `gorm:"index" json:"category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	AuthorID     uint      `gorm:"not null;index" json:"author_id"`
	Author       User      `gorm:"foreignKey:AuthorID" json:"author"`
	ViewCount    int       `gorm:"default:0" json:"view_count"`
	LikeCount    int       `gorm:"default:0" json:"like_count"`
	CommentCount int       `gorm:"default:0" json:"comment_count"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Per-viewer like state, filled in by the service layer.
	IsLiked bool `gorm:"-" json:"is_liked"`
}
