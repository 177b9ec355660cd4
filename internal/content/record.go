package content

import "math"

// Categories a product may belong to. Content naming a category outside this
// set fails the product build.
var Categories = map[string]bool{
	"spinnerbait":  true,
	"jig":          true,
	"crankbait":    true,
	"topwater":     true,
	"soft-plastic": true,
}

// Statuses recognised on content records.
const (
	StatusActive    = "active"
	StatusPublished = "published"
	StatusHidden    = "hidden"
	StatusDraft     = "draft"
)

// Image is the normalized image shape shared by products and catches.
// Authors may write bare URL strings or objects; the builders normalize both
// into this form.
type Image struct {
	Src    string   `json:"src"`
	Alt    string   `json:"alt,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Variant is a purchasable option of a product.
type Variant struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	SKU           string   `json:"sku"`
	StripePriceID string   `json:"stripePriceId,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

// Product is the canonical product record emitted to data/products.json.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Images      []Image   `json:"images"`
	Variants    []Variant `json:"variants"`
	Tags        []string  `json:"tags,omitempty"`
	Featured    bool      `json:"featured"`
	Status      string    `json:"status"`
	Sort        *float64  `json:"sort,omitempty"`
	PublishedAt string    `json:"publishedAt,omitempty"`
}

// Catch is the canonical gallery record emitted to data/catches.json.
type Catch struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Angler      string   `json:"angler"`
	LureID      string   `json:"lureId"`
	Location    string   `json:"location"`
	Species     string   `json:"species"`
	LengthIn    *float64 `json:"lengthIn,omitempty"`
	WeightLb    *float64 `json:"weightLb,omitempty"`
	Tags        []string `json:"tags"`
	Images      []Image  `json:"images"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	Sort        *float64 `json:"sort,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// sortKey maps an optional explicit sort value to a comparable number.
// Records without one float to the end.
func sortKey(s *float64) float64 {
	if s == nil {
		return math.MaxFloat64
	}
	return *s
}

// dateKey is the tie-break date for a catch: publishedAt wins over date.
func (c Catch) dateKey() string {
	if c.PublishedAt != "" {
		return c.PublishedAt
	}
	return c.Date
}
