package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devshowcase/showcase-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentNode is a root comment with its direct replies attached.
type CommentNode struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// CommentService handles comments and their two-level tree assembly.
type CommentService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewCommentService(db *gorm.DB, moderation *ModerationService) *CommentService {
	return &CommentService{db: db, moderation: moderation}
}

// GetTree fetches the project's active comments newest-first and assembles
// a two-level hierarchy: roots (no parent) carrying their direct replies.
// A reply whose parent is not a root — a reply-to-a-reply or an orphaned
// parent id — is dropped from the output. That is the rendering policy,
// not a data error. Reply lists inherit the newest-first order.
func (s *CommentService) GetTree(projectID uint) ([]CommentNode, error) {
	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("project_id = ? AND is_active = ?", projectID, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	roots := make([]CommentNode, 0, len(comments))
	rootIndex := make(map[uint]int)
	for _, c := range comments {
		if c.ParentID == nil {
			rootIndex[c.ID] = len(roots)
			roots = append(roots, CommentNode{Comment: c, Replies: []models.Comment{}})
		}
	}
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := rootIndex[*c.ParentID]; ok {
			roots[i].Replies = append(roots[i].Replies, c)
		}
	}
	return roots, nil
}

// Create inserts an active comment and bumps the project's comment_count in
// the same transaction. Replies count toward the project total too. Whether
// a given parent id belongs to the same project is the caller's concern.
func (s *CommentService) Create(projectID, authorID uint, content string, parentID *uint) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > 1000 {
		return nil, errors.New("comment must be 1-1000 characters")
	}
	if ok, reason := s.moderation.FilterContent(content); !ok {
		return nil, errors.New(s.moderation.RejectionMessage(reason))
	}

	comment := models.Comment{
		Content:   content,
		ProjectID: projectID,
		AuthorID:  authorID,
		ParentID:  parentID,
		IsActive:  true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("id = ? AND is_active = ?", projectID, true).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Update(id, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > 1000 {
		return nil, errors.New("comment must be 1-1000 characters")
	}
	if ok, reason := s.moderation.FilterContent(content); !ok {
		return nil, errors.New(s.moderation.RejectionMessage(reason))
	}

	var comment models.Comment
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	if comment.AuthorID != authorID {
		return nil, ErrNotOwner
	}

	if err := s.db.Model(&comment).Update("content", content).Error; err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &comment, nil
}

// Delete soft-deletes the comment and decrements the project's
// comment_count in one transaction, so the counter keeps matching the
// number of active comments.
func (s *CommentService) Delete(id, authorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.Where("id = ? AND is_active = ?", id, true).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		if comment.AuthorID != authorID {
			return ErrNotOwner
		}
		if err := tx.Model(&comment).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Project{}).
			Where("id = ? AND comment_count > 0", comment.ProjectID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
	})
}
