package models

import "time"

// Comment is self-referential via ParentID. Only one level of nesting is
// rendered; the tree assembly in the comment service drops anything deeper.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
