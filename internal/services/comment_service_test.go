package services_test

import (
	"testing"
	"time"

	"github.com/devshowcase/showcase-backend/internal/models"
	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTreeAssemblesTwoLevels(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	commenter := createUser(t, db, "commenter@example.com")
	project := createProject(t, db, author.ID, "discussed", 0, time.Now())

	root, err := svc.Create(project.ID, commenter.ID, "root comment", nil)
	require.NoError(t, err)
	reply, err := svc.Create(project.ID, author.ID, "a reply", &root.ID)
	require.NoError(t, err)

	tree, err := svc.GetTree(project.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, reply.ID, tree[0].Replies[0].ID)
}

func TestGetTreeDropsRepliesToReplies(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	project := createProject(t, db, author.ID, "discussed", 0, time.Now())

	root, err := svc.Create(project.ID, author.ID, "root", nil)
	require.NoError(t, err)
	reply, err := svc.Create(project.ID, author.ID, "reply", &root.ID)
	require.NoError(t, err)
	// Parent is itself a reply, so this one is not rendered.
	_, err = svc.Create(project.ID, author.ID, "reply to reply", &reply.ID)
	require.NoError(t, err)

	tree, err := svc.GetTree(project.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Len(t, tree[0].Replies, 1)
}

func TestGetTreeDropsOrphanReplies(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	project := createProject(t, db, author.ID, "discussed", 0, time.Now())

	missing := uint(4242)
	orphan := models.Comment{
		Content:   "orphan",
		ProjectID: project.ID,
		AuthorID:  author.ID,
		ParentID:  &missing,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&orphan).Error)

	tree, err := svc.GetTree(project.ID)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestGetTreeExcludesInactiveAndOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	project := createProject(t, db, author.ID, "discussed", 0, time.Now())

	now := time.Now()
	older := models.Comment{Content: "older", ProjectID: project.ID, AuthorID: author.ID, IsActive: true, CreatedAt: now.Add(-time.Hour)}
	newer := models.Comment{Content: "newer", ProjectID: project.ID, AuthorID: author.ID, IsActive: true, CreatedAt: now}
	hidden := models.Comment{Content: "hidden", ProjectID: project.ID, AuthorID: author.ID, IsActive: false, CreatedAt: now}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&hidden).Error)

	tree, err := svc.GetTree(project.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, newer.ID, tree[0].ID)
	assert.Equal(t, older.ID, tree[1].ID)
}

func TestCreateMaintainsCommentCount(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	project := createProject(t, db, author.ID, "discussed", 0, time.Now())

	root, err := svc.Create(project.ID, author.ID, "root", nil)
	require.NoError(t, err)
	// Replies count toward the project total too.
	_, err = svc.Create(project.ID, author.ID, "reply", &root.ID)
	require.NoError(t, err)

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, 2, reloaded.CommentCount)
}

func TestCreateOnMissingOrInactiveProject(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	_, err := svc.Create(99999, author.ID, "hello", nil)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)

	project := createProject(t, db, author.ID, "removed", 0, time.Now())
	require.NoError(t, db.Model(&project).Update("is_active", false).Error)
	_, err = svc.Create(project.ID, author.ID, "hello", nil)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestCreateRejectsBadContent(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	project := createProject(t, db, author.ID, "discussed", 0, time.Now())

	_, err := svc.Create(project.ID, author.ID, "   ", nil)
	assert.Error(t, err)

	_, err = svc.Create(project.ID, author.ID, "this is bullshit", nil)
	assert.Error(t, err)
}

func TestUpdateRequiresOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	project := createProject(t, db, owner.ID, "discussed", 0, time.Now())

	comment, err := svc.Create(project.ID, owner.ID, "original", nil)
	require.NoError(t, err)

	_, err = svc.Update(comment.ID, intruder.ID, "hijacked")
	assert.ErrorIs(t, err, services.ErrNotOwner)

	updated, err := svc.Update(comment.ID, owner.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteDecrementsCommentCount(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCommentService(db, services.NewModerationService())
	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	project := createProject(t, db, owner.ID, "discussed", 0, time.Now())

	comment, err := svc.Create(project.ID, owner.ID, "short-lived", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(comment.ID, intruder.ID), services.ErrNotOwner)
	require.NoError(t, svc.Delete(comment.ID, owner.ID))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, 0, reloaded.CommentCount)

	// Gone from the tree, and a second delete finds nothing active.
	tree, err := svc.GetTree(project.ID)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.ErrorIs(t, svc.Delete(comment.ID, owner.ID), services.ErrCommentNotFound)
}
