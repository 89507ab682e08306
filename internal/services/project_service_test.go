package services_test

import (
	"testing"
	"time"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/models"
	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersByLikeCountThenRecency(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	now := time.Now()
	createProject(t, db, author.ID, "A", 5, now.Add(-2*time.Hour))
	createProject(t, db, author.ID, "B", 5, now.Add(-1*time.Hour))
	createProject(t, db, author.ID, "C", 3, now.Add(-30*time.Minute))

	projects, total, err := svc.List(services.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, projects, 3)

	// Equal like counts break ties in favor of the newer project.
	assert.Equal(t, "B", projects[0].Title)
	assert.Equal(t, "A", projects[1].Title)
	assert.Equal(t, "C", projects[2].Title)
}

func TestListExcludesInactiveProjects(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	active := createProject(t, db, author.ID, "active", 0, time.Now())
	removed := createProject(t, db, author.ID, "removed", 0, time.Now())
	require.NoError(t, db.Model(&removed).Update("is_active", false).Error)

	projects, total, err := svc.List(services.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, active.ID, projects[0].ID)
}

func TestListTimeframeToday(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	createProject(t, db, author.ID, "yesterday", 10, time.Now().Add(-48*time.Hour))
	today := createProject(t, db, author.ID, "today", 1, time.Now())

	projects, total, err := svc.List(services.ListOptions{Timeframe: services.TimeframeToday})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, today.ID, projects[0].ID)
}

func TestListFiltersByCategory(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	web := createCategory(t, db, "Web", "web")
	game := createCategory(t, db, "Game", "game")

	inWeb := createProject(t, db, author.ID, "web thing", 0, time.Now())
	require.NoError(t, db.Model(&inWeb).Update("category_id", web.ID).Error)
	inGame := createProject(t, db, author.ID, "game thing", 0, time.Now())
	require.NoError(t, db.Model(&inGame).Update("category_id", game.ID).Error)

	projects, total, err := svc.List(services.ListOptions{CategoryID: &web.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, inWeb.ID, projects[0].ID)
}

func TestListAttachesViewerLikeState(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	viewer := createUser(t, db, "viewer@example.com")

	liked := createProject(t, db, author.ID, "liked", 0, time.Now())
	createProject(t, db, author.ID, "not liked", 0, time.Now())

	_, err := svc.ToggleLike(liked.ID, viewer.ID)
	require.NoError(t, err)

	projects, _, err := svc.List(services.ListOptions{ViewerID: &viewer.ID})
	require.NoError(t, err)
	require.Len(t, projects, 2)

	byID := map[uint]models.Project{}
	for _, p := range projects {
		byID[p.ID] = p
	}
	assert.True(t, byID[liked.ID].IsLiked)

	// Anonymous viewers never see like state.
	projects, _, err = svc.List(services.ListOptions{})
	require.NoError(t, err)
	for _, p := range projects {
		assert.False(t, p.IsLiked)
	}
}

func TestSearchMatchesTitleAndDescriptionCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	createProject(t, db, author.ID, "Weather Dashboard", 0, time.Now())
	other := createProject(t, db, author.ID, "CLI tool", 0, time.Now())
	require.NoError(t, db.Model(&other).Update("description", "forecasts the WEATHER").Error)
	createProject(t, db, author.ID, "unrelated", 0, time.Now())

	projects, total, err := svc.Search("weather", services.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, projects, 2)
}

func TestGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())

	_, err := svc.GetByID(12345, nil)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestGetByIDExcludesInactive(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	project := createProject(t, db, author.ID, "gone", 0, time.Now())
	require.NoError(t, db.Model(&project).Update("is_active", false).Error)

	_, err := svc.GetByID(project.ID, nil)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestIncrementViewCount(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	project := createProject(t, db, author.ID, "viewed", 0, time.Now())

	require.NoError(t, svc.IncrementViewCount(project.ID))
	require.NoError(t, svc.IncrementViewCount(project.ID))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, 2, reloaded.ViewCount)
}

func TestIncrementViewCountMissingIDIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())

	assert.NoError(t, svc.IncrementViewCount(99999))
}

func TestToggleLikeRoundTrip(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	liker := createUser(t, db, "liker@example.com")
	project := createProject(t, db, author.ID, "likeable", 0, time.Now())

	result, err := svc.ToggleLike(project.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	// Toggling twice restores the original state.
	result, err = svc.ToggleLike(project.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikeCount)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggleLikeMissingProject(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	liker := createUser(t, db, "liker@example.com")

	_, err := svc.ToggleLike(99999, liker.ID)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestCreateValidatesAndStores(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	category := createCategory(t, db, "Tool", "tool")

	project, err := svc.Create(author.ID, &dto.CreateProjectRequest{
		Title:       "  My Tool  ",
		Description: "does things",
		CategoryID:  &category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "My Tool", project.Title)
	assert.True(t, project.IsActive)
	assert.NotZero(t, project.ID)
}

func TestCreateRejectsBadInput(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	_, err := svc.Create(author.ID, &dto.CreateProjectRequest{Title: "", Description: "x"})
	assert.Error(t, err)

	_, err = svc.Create(author.ID, &dto.CreateProjectRequest{Title: "t", Description: "  "})
	assert.Error(t, err)

	unknown := uint(4242)
	_, err = svc.Create(author.ID, &dto.CreateProjectRequest{Title: "t", Description: "d", CategoryID: &unknown})
	assert.Error(t, err)

	_, err = svc.Create(author.ID, &dto.CreateProjectRequest{Title: "total bullshit", Description: "d"})
	assert.Error(t, err)
}

func TestUpdateOwnershipAndFields(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	project := createProject(t, db, owner.ID, "original", 0, time.Now())

	newTitle := "renamed"
	_, err := svc.Update(project.ID, intruder.ID, &dto.UpdateProjectRequest{Title: &newTitle})
	assert.ErrorIs(t, err, services.ErrNotOwner)

	updated, err := svc.Update(project.ID, owner.ID, &dto.UpdateProjectRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, "renamed", reloaded.Title)
}

func TestDeleteSoftDeletes(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	project := createProject(t, db, owner.ID, "doomed", 0, time.Now())

	assert.ErrorIs(t, svc.Delete(project.ID, intruder.ID), services.ErrNotOwner)
	require.NoError(t, svc.Delete(project.ID, owner.ID))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.False(t, reloaded.IsActive)

	// A second delete sees no active row.
	assert.ErrorIs(t, svc.Delete(project.ID, owner.ID), services.ErrProjectNotFound)
}

func TestListByAuthorNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")
	other := createUser(t, db, "other@example.com")

	now := time.Now()
	first := createProject(t, db, author.ID, "first", 9, now.Add(-time.Hour))
	second := createProject(t, db, author.ID, "second", 1, now)
	createProject(t, db, other.ID, "not mine", 0, now)

	projects, total, err := svc.ListByAuthor(author.ID, services.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}

func TestListPagination(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewProjectService(db, services.NewModerationService())
	author := createUser(t, db, "author@example.com")

	now := time.Now()
	for i := 0; i < 5; i++ {
		createProject(t, db, author.ID, "p", i, now)
	}

	projects, total, err := svc.List(services.ListOptions{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, projects, 2)
	assert.Equal(t, 2, projects[0].LikeCount)
	assert.Equal(t, 1, projects[1].LikeCount)
}
