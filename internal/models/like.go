package models

import "time"

// Like rows are hard-deleted on un-like. The composite unique index keeps
// at most one row per (project, user) pair even under concurrent toggles.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_likes_project_user" json:"project_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_project_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
