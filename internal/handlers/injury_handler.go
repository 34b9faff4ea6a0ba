package handlers

import (
	"errors"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InjuryHandler struct {
	service *services.InjuryService
}

func NewInjuryHandler(service *services.InjuryService) *InjuryHandler {
	return &InjuryHandler{service: service}
}

func (h *InjuryHandler) ListByAthlete(c *fiber.Ctx) error {
	id, ok := parseID(c, "athleteId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid athlete ID",
		})
	}

	items, err := h.service.ListByAthlete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list injuries",
		})
	}
	return c.JSON(items)
}

func (h *InjuryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInjuryRequest
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
		case errors.Is(err, services.ErrAthleteRequired),
			errors.Is(err, services.ErrInvalidSeverity),
			errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create injury",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
