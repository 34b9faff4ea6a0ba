package handlers

import (
	"errors"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AthleteHandler struct {
	athletes *services.AthleteService
	notes    *services.NoteService
}

func NewAthleteHandler(athletes *services.AthleteService, notes *services.NoteService) *AthleteHandler {
	return &AthleteHandler{athletes: athletes, notes: notes}
}

func (h *AthleteHandler) List(c *fiber.Ctx) error {
	athletes, err := h.athletes.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list athletes",
		})
	}
	return c.JSON(athletes)
}

func (h *AthleteHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid athlete ID",
		})
	}

	athlete, err := h.athletes.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAthleteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load athlete",
		})
	}
	return c.JSON(athlete)
}

func (h *AthleteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	athlete, err := h.athletes.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create athlete",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(athlete)
}

func (h *AthleteHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid athlete ID",
		})
	}

	var req dto.UpdateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	athlete, err := h.athletes.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAthleteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNameRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update athlete",
		})
	}
	return c.JSON(athlete)
}

func (h *AthleteHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid athlete ID",
		})
	}

	if err := h.athletes.Delete(id); err != nil {
		if errors.Is(err, services.ErrAthleteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete athlete",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AthleteHandler) Notes(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid athlete ID",
		})
	}

	notes, err := h.notes.ListByAthlete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list notes",
		})
	}
	return c.JSON(notes)
}
