package handlers

import (
	"errors"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/middleware"
	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("id")
	if err != nil || projectID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid project ID"})
	}

	tree, err := h.service.GetTree(uint(projectID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to fetch comments"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"comments": tree}})
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	projectID, err := c.ParamsInt("id")
	if err != nil || projectID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid project ID"})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	comment, err := h.service.Create(uint(projectID), userID, req.Content, req.ParentID)
	if errors.Is(err, services.ErrProjectNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Project not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": comment})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid comment ID"})
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	comment, err := h.service.Update(uint(id), userID, req.Content)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Comment not found"})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "You can only edit your own comments"})
	case err != nil:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"data": comment})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid comment ID"})
	}

	err = h.service.Delete(uint(id), userID)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Comment not found"})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "You can only delete your own comments"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to delete comment"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Comment deleted"})
}
