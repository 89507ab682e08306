package models

import "time"

// SiteVisit records one row per distinct session per calendar day. Rows are
// never updated or deleted.
type SiteVisit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;size:64;index" json:"session_id"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	VisitDate time.Time `gorm:"not null;index" json:"visit_date"`
}
