package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/gallery"
	"github.com/example/riplures/internal/utils"
)

// GalleryHandler serves the catch gallery with lure cross-references
// resolved.
type GalleryHandler struct {
	holder *catalog.Holder
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(holder *catalog.Holder) *GalleryHandler {
	return &GalleryHandler{holder: holder}
}

// ListCatches returns the filtered, windowed gallery view.
func (h *GalleryHandler) ListCatches(c *fiber.Ctx) error {
	store := h.holder.Get()

	entries := gallery.BuildEntries(store.Catches(), store)
	filtered := gallery.Apply(entries, gallery.Filter{
		Category:     c.Query("category"),
		LureID:       c.Query("lure"),
		Query:        c.Query("search"),
		FeaturedOnly: c.Query("featured") == "true",
	})

	show := utils.ParseShow(c, catalog.DefaultWindow)
	if show > len(filtered) {
		show = len(filtered)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered[:show],
		"total":   len(filtered),
		"show":    show,
		"notice":  store.CatchesNotice,
	})
}

// ListLures returns the lure facet for the gallery filter UI: id and name of
// every visible product.
func (h *GalleryHandler) ListLures(c *fiber.Ctx) error {
	store := h.holder.Get()

	type lure struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	lures := []lure{}
	for _, p := range catalog.Visible(store.Products(), false) {
		lures = append(lures, lure{ID: p.ID, Name: p.Name})
	}

	return c.JSON(fiber.Map{"success": true, "data": lures})
}
