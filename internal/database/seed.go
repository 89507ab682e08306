package database

import (
	"fmt"
	"log/slog"

	"github.com/devshowcase/showcase-backend/internal/models"
)

var defaultCategories = []models.Category{
	{Name: "Web", Slug: "web", Description: "Websites and web applications"},
	{Name: "Mobile", Slug: "mobile", Description: "iOS, Android and cross-platform apps"},
	{Name: "Game", Slug: "game", Description: "Games and interactive experiences"},
	{Name: "AI / ML", Slug: "ai-ml", Description: "Machine learning and AI projects"},
	{Name: "Tool", Slug: "tool", Description: "Developer tools, CLIs and libraries"},
	{Name: "Hardware", Slug: "hardware", Description: "Embedded, IoT and hardware builds"},
	{Name: "Other", Slug: "other", Description: "Everything else"},
}

// SeedCategories inserts the static category reference data, keyed by slug
// so reruns are no-ops.
func SeedCategories() error {
	for _, category := range defaultCategories {
		err := DB.Where(models.Category{Slug: category.Slug}).
			FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Slug, err)
		}
	}
	slog.Info("categories seeded", "count", len(defaultCategories))
	return nil
}
