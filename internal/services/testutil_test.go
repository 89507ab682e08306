package services_test

import (
	"testing"
	"time"

	"github.com/devshowcase/showcase-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an in-memory sqlite database. The pool is pinned to a
// single connection because every sqlite :memory: connection is its own
// database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Project{},
		&models.Like{},
		&models.Comment{},
		&models.Feedback{},
		&models.SiteVisit{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x", Provider: "email"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProject(t *testing.T, db *gorm.DB, authorID uint, title string, likeCount int, createdAt time.Time) models.Project {
	t.Helper()
	project := models.Project{
		Title:       title,
		Description: "description of " + title,
		AuthorID:    authorID,
		LikeCount:   likeCount,
		IsActive:    true,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&project).Error)
	return project
}
