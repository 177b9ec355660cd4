package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/content"
	"github.com/example/riplures/internal/utils"
)

// CatalogHandler serves browsing views over the built product artifact.
type CatalogHandler struct {
	holder *catalog.Holder
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(holder *catalog.Holder) *CatalogHandler {
	return &CatalogHandler{holder: holder}
}

// ListProducts returns the filtered, windowed catalog view. Hidden products
// are excluded; the admin surface has its own route for preview.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	return h.listProducts(c, false)
}

// ListProductsAdmin is the hidden-item preview behind the admin JWT.
func (h *CatalogHandler) ListProductsAdmin(c *fiber.Ctx) error {
	return h.listProducts(c, true)
}

func (h *CatalogHandler) listProducts(c *fiber.Ctx, includeHidden bool) error {
	store := h.holder.Get()

	filter := catalog.Filter{
		Category:      c.Query("category"),
		Query:         c.Query("search"),
		FeaturedOnly:  c.Query("featured") == "true",
		IncludeHidden: includeHidden,
	}

	filtered := catalog.Apply(store.Products(), filter)
	show := utils.ParseShow(c, catalog.DefaultWindow)
	if show > len(filtered) {
		show = len(filtered)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered[:show],
		"total":   len(filtered),
		"show":    show,
		"notice":  store.ProductsNotice,
	})
}

// GetProduct returns one product by content id. Hidden products are not
// served here; drafts never reach the artifact at all.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	store := h.holder.Get()

	product, ok := store.ProductByID(c.Params("id"))
	if !ok || product.Status == content.StatusHidden {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListCategories returns the facet set derived from the visible subset.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	store := h.holder.Get()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    catalog.Categories(store.Products()),
	})
}
