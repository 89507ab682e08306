package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotOwner        = errors.New("not the owner of this resource")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Timeframe names a rolling window used to filter projects by creation date.
type Timeframe string

const (
	TimeframeToday   Timeframe = "today"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeAll     Timeframe = "all"
)

// lowerBound returns the inclusive created_at lower bound for the window.
// "all" (and any unknown value) means no bound.
func (t Timeframe) lowerBound(now time.Time) (time.Time, bool) {
	switch t {
	case TimeframeToday:
		return startOfDay(now), true
	case TimeframeWeekly:
		return now.AddDate(0, 0, -7), true
	case TimeframeMonthly:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ListOptions describes a feed request. ViewerID is nil for anonymous
// viewers, in which case IsLiked stays false on every row.
type ListOptions struct {
	CategoryID *uint
	Limit      int
	Offset     int
	Timeframe  Timeframe
	ViewerID   *uint
}

func (o ListOptions) normalized() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultPageSize
	}
	if o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

// ProjectService handles project CRUD, the ranked feed and engagement.
type ProjectService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewProjectService(db *gorm.DB, moderation *ModerationService) *ProjectService {
	return &ProjectService{db: db, moderation: moderation}
}

// List returns active projects ranked by like_count, with created_at
// breaking ties in favor of newer projects.
func (s *ProjectService) List(opts ListOptions) ([]models.Project, int64, error) {
	opts = opts.normalized()

	query := s.db.Model(&models.Project{}).Where("is_active = ?", true)
	if opts.CategoryID != nil {
		query = query.Where("category_id = ?", *opts.CategoryID)
	}
	if bound, ok := opts.Timeframe.lowerBound(time.Now()); ok {
		query = query.Where("created_at >= ?", bound)
	}

	return s.fetchRanked(query, opts)
}

// Search matches a case-insensitive substring against title or description.
// Result ordering and enrichment are identical to List; there is no
// relevance ranking.
func (s *ProjectService) Search(q string, opts ListOptions) ([]models.Project, int64, error) {
	opts = opts.normalized()
	pattern := "%" + strings.ToLower(q) + "%"

	query := s.db.Model(&models.Project{}).
		Where("is_active = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)

	return s.fetchRanked(query, opts)
}

// ListByAuthor returns the author's active projects, newest first.
func (s *ProjectService) ListByAuthor(authorID uint, opts ListOptions) ([]models.Project, int64, error) {
	opts = opts.normalized()

	query := s.db.Model(&models.Project{}).
		Where("is_active = ? AND author_id = ?", true, authorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var projects []models.Project
	err := query.
		Preload("Author").Preload("Category").
		Order("created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	if err := s.attachLikeState(projects, opts.ViewerID); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (s *ProjectService) fetchRanked(query *gorm.DB, opts ListOptions) ([]models.Project, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var projects []models.Project
	err := query.
		Preload("Author").Preload("Category").
		Order("like_count DESC, created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	if err := s.attachLikeState(projects, opts.ViewerID); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// attachLikeState fills IsLiked for the page with a single IN-query over
// the viewer's like rows.
func (s *ProjectService) attachLikeState(projects []models.Project, viewerID *uint) error {
	if viewerID == nil || len(projects) == 0 {
		return nil
	}

	ids := make([]uint, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}

	var likes []models.Like
	if err := s.db.Where("user_id = ? AND project_id IN ?", *viewerID, ids).Find(&likes).Error; err != nil {
		return fmt.Errorf("failed to load like state: %w", err)
	}

	liked := make(map[uint]bool, len(likes))
	for _, l := range likes {
		liked[l.ProjectID] = true
	}
	for i := range projects {
		projects[i].IsLiked = liked[projects[i].ID]
	}
	return nil
}

// GetByID returns a single active project with author, category and
// per-viewer like state. The view counter is not touched here; callers
// that want to count a view call IncrementViewCount explicitly so that
// internal lookups (ownership checks etc.) don't inflate it.
func (s *ProjectService) GetByID(id uint, viewerID *uint) (*models.Project, error) {
	var project models.Project
	err := s.db.Preload("Author").Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if viewerID != nil {
		var count int64
		err := s.db.Model(&models.Like{}).
			Where("project_id = ? AND user_id = ?", id, *viewerID).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load like state: %w", err)
		}
		project.IsLiked = count > 0
	}
	return &project, nil
}

// IncrementViewCount bumps view_count by one regardless of active state.
// A missing id affects zero rows and is not an error.
func (s *ProjectService) IncrementViewCount(id uint) error {
	return s.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// ToggleLike flips the viewer's like on a project. The row mutation and the
// counter update run in one transaction, and the unique (project_id,
// user_id) index makes a concurrent double-toggle fail instead of skewing
// the counter. The returned count is read back from the store.
func (s *ProjectService) ToggleLike(projectID, userID uint) (*dto.LikeResult, error) {
	var result dto.LikeResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("id = ? AND is_active = ?", projectID, true).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		var existing models.Like
		err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
			result.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.Like{ProjectID: projectID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			result.Liked = true
		default:
			return err
		}

		var count int
		if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
			Select("like_count").Scan(&count).Error; err != nil {
			return err
		}
		result.LikeCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ProjectService) Create(authorID uint, req *dto.CreateProjectRequest) (*models.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 200 {
		return nil, errors.New("title must be 1-200 characters")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description is required")
	}
	if ok, reason := s.moderation.FilterContent(title + " " + req.Description); !ok {
		return nil, errors.New(s.moderation.RejectionMessage(reason))
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *req.CategoryID).Error; err != nil {
			return nil, errors.New("unknown category")
		}
	}

	project := models.Project{
		Title:       title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		DemoURL:     req.DemoURL,
		ContactInfo: req.ContactInfo,
		CategoryID:  req.CategoryID,
		AuthorID:    authorID,
		IsActive:    true,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) Update(id, userID uint, req *dto.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.AuthorID != userID {
		return nil, ErrNotOwner
	}

	newTitle := project.Title
	newDescription := project.Description

	updates := map[string]interface{}{}
	if req.Title != nil {
		newTitle = strings.TrimSpace(*req.Title)
		if newTitle == "" || len(newTitle) > 200 {
			return nil, errors.New("title must be 1-200 characters")
		}
		updates["title"] = newTitle
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, errors.New("description is required")
		}
		newDescription = *req.Description
		updates["description"] = newDescription
	}
	if req.Title != nil || req.Description != nil {
		if ok, reason := s.moderation.FilterContent(newTitle + " " + newDescription); !ok {
			return nil, errors.New(s.moderation.RejectionMessage(reason))
		}
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.DemoURL != nil {
		updates["demo_url"] = *req.DemoURL
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = *req.ContactInfo
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *req.CategoryID).Error; err != nil {
			return nil, errors.New("unknown category")
		}
		updates["category_id"] = *req.CategoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}
	return &project, nil
}

// Delete soft-deletes by flipping is_active; the row stays for referential
// integrity.
func (s *ProjectService) Delete(id, userID uint) error {
	var project models.Project
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}
	if project.AuthorID != userID {
		return ErrNotOwner
	}
	return s.db.Model(&project).Update("is_active", false).Error
}
