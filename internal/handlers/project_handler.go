package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/middleware"
	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) listOptions(c *fiber.Ctx) services.ListOptions {
	opts := services.ListOptions{
		Limit:     c.QueryInt("limit", services.DefaultPageSize),
		Offset:    c.QueryInt("offset", 0),
		Timeframe: services.Timeframe(c.Query("timeframe", string(services.TimeframeAll))),
		ViewerID:  middleware.ViewerID(c),
	}
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		id := uint(categoryID)
		opts.CategoryID = &id
	}
	return opts
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	opts := h.listOptions(c)

	projects, total, err := h.service.List(opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to fetch projects"})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"projects": projects,
			"pagination": fiber.Map{
				"limit":  opts.Limit,
				"offset": opts.Offset,
				"total":  total,
			},
		},
	})
}

func (h *ProjectHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Search query is required"})
	}

	opts := h.listOptions(c)
	projects, total, err := h.service.Search(q, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to search projects"})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"projects": projects,
			"pagination": fiber.Map{
				"limit":  opts.Limit,
				"offset": opts.Offset,
				"total":  total,
				"query":  q,
			},
		},
	})
}

func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid project ID"})
	}

	project, err := h.service.GetByID(uint(id), middleware.ViewerID(c))
	if errors.Is(err, services.ErrProjectNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Project not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to fetch project"})
	}

	// Count the view only after a successful public fetch.
	if err := h.service.IncrementViewCount(project.ID); err != nil {
		slog.Warn("view count increment failed", "project_id", project.ID, "error", err)
	}

	return c.JSON(fiber.Map{"data": project})
}

func (h *ProjectHandler) MyProjects(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	opts := h.listOptions(c)
	opts.ViewerID = &userID

	projects, total, err := h.service.ListByAuthor(userID, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to fetch projects"})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"projects": projects,
			"pagination": fiber.Map{
				"limit":  opts.Limit,
				"offset": opts.Offset,
				"total":  total,
			},
		},
	})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	project, err := h.service.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": project})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid project ID"})
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	project, err := h.service.Update(uint(id), userID, &req)
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Project not found"})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "You can only edit your own projects"})
	case err != nil:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"data": project})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid project ID"})
	}

	err = h.service.Delete(uint(id), userID)
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Project not found"})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "You can only delete your own projects"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to delete project"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Project deleted"})
}

func (h *ProjectHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid project ID"})
	}

	result, err := h.service.ToggleLike(uint(id), userID)
	if errors.Is(err, services.ErrProjectNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Project not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to toggle like"})
	}

	return c.JSON(fiber.Map{"data": result})
}
