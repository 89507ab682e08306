package handlers

import (
	"errors"

	"github.com/devshowcase/showcase-backend/internal/dto"
	"github.com/devshowcase/showcase-backend/internal/middleware"
	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	service *services.FeedbackService
}

func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", services.DefaultPageSize)
	offset := c.QueryInt("offset", 0)

	feedback, total, err := h.service.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to fetch feedback"})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"feedback": feedback,
			"pagination": fiber.Map{
				"limit":  limit,
				"offset": offset,
				"total":  total,
			},
		},
	})
}

func (h *FeedbackHandler) Mine(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	feedback, err := h.service.ListByAuthor(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to fetch feedback"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"feedback": feedback}})
}

func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	feedback, err := h.service.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": feedback})
}

func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid feedback ID"})
	}

	var req dto.UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	feedback, err := h.service.Update(uint(id), userID, &req)
	switch {
	case errors.Is(err, services.ErrFeedbackNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Feedback not found"})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "You can only edit your own feedback"})
	case err != nil:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"data": feedback})
}

func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid feedback ID"})
	}

	err = h.service.Delete(uint(id), userID)
	switch {
	case errors.Is(err, services.ErrFeedbackNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Feedback not found"})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "You can only delete your own feedback"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to delete feedback"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Feedback deleted"})
}
