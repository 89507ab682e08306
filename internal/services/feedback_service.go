package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/models"
	"gorm.io/gorm"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

var validFeedbackCategories = map[string]bool{
	models.FeedbackCategoryBug:     true,
	models.FeedbackCategoryFeature: true,
	models.FeedbackCategoryOther:   true,
}

// FeedbackService handles platform feedback. Mutation and deletion are
// restricted to the authoring user.
type FeedbackService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewFeedbackService(db *gorm.DB, moderation *ModerationService) *FeedbackService {
	return &FeedbackService{db: db, moderation: moderation}
}

func (s *FeedbackService) Create(authorID uint, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > 2000 {
		return nil, errors.New("feedback must be 1-2000 characters")
	}
	if !validFeedbackCategories[req.Category] {
		return nil, errors.New("category must be bug, feature or other")
	}
	if ok, reason := s.moderation.FilterContent(content); !ok {
		return nil, errors.New(s.moderation.RejectionMessage(reason))
	}

	feedback := models.Feedback{
		Content:  content,
		Category: req.Category,
		AuthorID: authorID,
		IsActive: true,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return &feedback, nil
}

func (s *FeedbackService) List(limit, offset int) ([]models.Feedback, int64, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	query := s.db.Model(&models.Feedback{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	var feedback []models.Feedback
	err := query.Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&feedback).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, total, nil
}

func (s *FeedbackService) ListByAuthor(authorID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := s.db.Where("author_id = ? AND is_active = ?", authorID, true).
		Order("created_at DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}

func (s *FeedbackService) Update(id, authorID uint, req *dto.UpdateFeedbackRequest) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	if feedback.AuthorID != authorID {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" || len(content) > 2000 {
			return nil, errors.New("feedback must be 1-2000 characters")
		}
		if ok, reason := s.moderation.FilterContent(content); !ok {
			return nil, errors.New(s.moderation.RejectionMessage(reason))
		}
		updates["content"] = content
	}
	if req.Category != nil {
		if !validFeedbackCategories[*req.Category] {
			return nil, errors.New("category must be bug, feature or other")
		}
		updates["category"] = *req.Category
	}

	if len(updates) > 0 {
		if err := s.db.Model(&feedback).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update feedback: %w", err)
		}
	}
	return &feedback, nil
}

func (s *FeedbackService) Delete(id, authorID uint) error {
	var feedback models.Feedback
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		return fmt.Errorf("failed to load feedback: %w", err)
	}
	if feedback.AuthorID != authorID {
		return ErrNotOwner
	}
	return s.db.Model(&feedback).Update("is_active", false).Error
}
