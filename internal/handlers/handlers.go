package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
