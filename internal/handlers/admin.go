package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/content"
)

// AdminHandler exposes the content rebuild trigger.
type AdminHandler struct {
	holder *catalog.Holder
	paths  content.Paths
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(holder *catalog.Holder, paths content.Paths) *AdminHandler {
	return &AdminHandler{holder: holder, paths: paths}
}

// Rebuild reruns the content build and swaps in a fresh catalog snapshot.
func (h *AdminHandler) Rebuild(c *fiber.Ctx) error {
	if err := content.BuildAll(h.paths); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	store := catalog.Load(h.paths.ProductsOut, h.paths.CatchesOut)
	h.holder.Set(store)

	return c.JSON(fiber.Map{
		"success":  true,
		"products": len(store.Products()),
		"catches":  len(store.Catches()),
	})
}
