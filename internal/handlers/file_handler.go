package handlers

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FileHandler struct {
	uploadDir string
}

func NewFileHandler(uploadDir string) *FileHandler {
	return &FileHandler{uploadDir: uploadDir}
}

// Upload stores one multipart file under a random 32-hex name, keeping the
// original extension lowercased.
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "file is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".bin"
	}

	id := uuid.New()
	name := hex.EncodeToString(id[:]) + ext

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store file",
		})
	}
	if err := c.SaveFile(fileHeader, filepath.Join(h.uploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store file",
		})
	}

	return c.JSON(dto.UploadResponse{URL: "/uploads/" + name})
}
