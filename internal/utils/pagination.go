package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseShow reads the "show" query param — the incrementing window size the
// browsing views page with. Missing or bad values fall back to the initial
// window.
func ParseShow(c *fiber.Ctx, initial int) int {
	show := parseInt(c.Query("show", ""), initial)
	if show <= 0 {
		return initial
	}
	return show
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
