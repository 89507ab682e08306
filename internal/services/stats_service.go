package services

import (
	"fmt"
	"time"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/models"
	"gorm.io/gorm"
)

// StatsService computes the dashboard aggregates. Every call recomputes
// from the store; there is no caching layer.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) GetStats() (*dto.StatsResponse, error) {
	var stats dto.StatsResponse

	err := s.db.Model(&models.Project{}).
		Where("is_active = ?", true).
		Count(&stats.TotalProjects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	err = s.db.Model(&models.SiteVisit{}).
		Where("visit_date >= ?", startOfDay(time.Now())).
		Distinct("session_id").
		Count(&stats.TodayVisits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	err = s.db.Model(&models.Project{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(like_count), 0)").
		Scan(&stats.TotalLikes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum likes: %w", err)
	}

	return &stats, nil
}
