package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/example/riplures/internal/content"
)

// Store is an immutable snapshot of the built content artifacts. It is
// produced once by Load and passed to consumers; a rebuild produces a fresh
// Store rather than mutating this one.
type Store struct {
	products []content.Product
	catches  []content.Catch
	byID     map[string]content.Product

	// Load notices surfaced to the UI instead of failing the request.
	ProductsNotice string
	CatchesNotice  string
}

// Load reads and re-validates both artifacts. Validation is fail-soft:
// records that do not satisfy the schema are dropped with a warning, and a
// file that cannot be read or parsed at all yields an empty collection plus
// a notice for the UI banner. Load itself never returns an error.
func Load(productsPath, catchesPath string) *Store {
	s := &Store{byID: make(map[string]content.Product)}

	s.products, s.ProductsNotice = loadProducts(productsPath)
	s.catches, s.CatchesNotice = loadCatches(catchesPath)

	for _, p := range s.products {
		s.byID[p.ID] = p
	}

	return s
}

// Products returns every record in the artifact, hidden included, in
// build order.
func (s *Store) Products() []content.Product { return s.products }

// Catches returns every gallery record in build order.
func (s *Store) Catches() []content.Catch { return s.catches }

// ProductByID resolves a product id; ok is false for dangling references.
func (s *Store) ProductByID(id string) (content.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func loadProducts(path string) ([]content.Product, string) {
	var raw []json.RawMessage
	if notice := readArray(path, &raw); notice != "" {
		return nil, notice
	}

	products := make([]content.Product, 0, len(raw))
	for i, msg := range raw {
		var p content.Product
		if err := json.Unmarshal(msg, &p); err != nil {
			log.Printf("[catalog] dropping product record %d: %v", i, err)
			continue
		}
		if err := validateProduct(p); err != nil {
			log.Printf("[catalog] dropping product record %d: %v", i, err)
			continue
		}
		products = append(products, p)
	}
	return products, ""
}

func loadCatches(path string) ([]content.Catch, string) {
	var raw []json.RawMessage
	if notice := readArray(path, &raw); notice != "" {
		return nil, notice
	}

	catches := make([]content.Catch, 0, len(raw))
	for i, msg := range raw {
		var c content.Catch
		if err := json.Unmarshal(msg, &c); err != nil {
			log.Printf("[catalog] dropping catch record %d: %v", i, err)
			continue
		}
		if err := validateCatch(c); err != nil {
			log.Printf("[catalog] dropping catch record %d: %v", i, err)
			continue
		}
		catches = append(catches, c)
	}
	return catches, ""
}

func readArray(path string, out *[]json.RawMessage) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[catalog] failed to read %s: %v", path, err)
		return fmt.Sprintf("failed to load %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[catalog] failed to parse %s: %v", path, err)
		return fmt.Sprintf("failed to parse %s", path)
	}
	return ""
}

// validateProduct re-checks the artifact schema at load time. The build
// should have enforced all of this already; defense in depth against a
// hand-edited artifact.
func validateProduct(p content.Product) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: missing name", p.ID)
	}
	if !content.Categories[p.Category] {
		return fmt.Errorf("product %s: invalid category %q", p.ID, p.Category)
	}
	if len(p.Images) == 0 || p.Images[0].Src == "" {
		return fmt.Errorf("product %s: no images", p.ID)
	}
	if len(p.Variants) == 0 {
		return fmt.Errorf("product %s: no variants", p.ID)
	}
	for _, v := range p.Variants {
		if v.ID == "" || v.Label == "" || v.SKU == "" {
			return fmt.Errorf("product %s: incomplete variant", p.ID)
		}
	}
	return nil
}

func validateCatch(c content.Catch) error {
	if c.ID == "" {
		return fmt.Errorf("missing id")
	}
	if len(c.Images) == 0 || c.Images[0].Src == "" {
		return fmt.Errorf("catch %s: no images", c.ID)
	}
	return nil
}
