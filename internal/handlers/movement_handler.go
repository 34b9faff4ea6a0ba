package handlers

import (
	"errors"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	service *services.MovementService
}

func NewMovementHandler(service *services.MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

func (h *MovementHandler) ListByAthlete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid athlete ID",
		})
	}

	items, err := h.service.ListByAthlete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list movement assessments",
		})
	}
	return c.JSON(items)
}

func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAthleteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAthleteRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create movement assessment",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
