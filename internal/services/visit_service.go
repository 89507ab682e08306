package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/devshowcase/showcase-backend/internal/models"
	"gorm.io/gorm"
)

// VisitService records site visits, at most one row per session per
// calendar day.
type VisitService struct {
	db *gorm.DB
}

func NewVisitService(db *gorm.DB) *VisitService {
	return &VisitService{db: db}
}

// Record looks the session up within the current day first; repeat calls
// return the existing row instead of inserting a duplicate.
func (s *VisitService) Record(sessionID, userAgent, ip string) (*models.SiteVisit, error) {
	now := time.Now()

	var existing models.SiteVisit
	err := s.db.Where("session_id = ? AND visit_date >= ?", sessionID, startOfDay(now)).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up visit: %w", err)
	}

	visit := models.SiteVisit{
		SessionID: sessionID,
		UserAgent: userAgent,
		IPAddress: ip,
		VisitDate: now,
	}
	if err := s.db.Create(&visit).Error; err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}
	return &visit, nil
}
