package content

import (
	"fmt"
	"path/filepath"
	"sort"
)

// BuildProducts bundles contentDir/*.json into a single validated, sorted
// product array at outPath.
//
// The product collection is the strict variant: a missing required field, an
// unknown category, a malformed variant, or a duplicate id aborts the whole
// build rather than shipping an incomplete catalog silently. Unparseable
// files and records with zero usable images are skipped with a warning.
func BuildProducts(contentDir, outPath string) (*Result, error) {
	res := &Result{}

	files, err := listContentFiles(contentDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return res, keepOrWriteEmpty(outPath, res)
	}

	products := []Product{}
	seen := make(map[string]bool)

	for _, file := range files {
		raw, err := readRawRecord(filepath.Join(contentDir, file))
		if err != nil {
			res.warnf("skipping %s: %v", file, err)
			continue
		}

		product, err := buildProduct(raw, file)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue // draft
		}
		if len(product.Images) == 0 {
			res.warnf("skipping %s: no usable images", file)
			continue
		}

		if seen[product.ID] {
			return nil, fmt.Errorf("duplicate product id %q in %s", product.ID, file)
		}
		seen[product.ID] = true

		products = append(products, *product)
	}

	sortProducts(products)

	res.Records = len(products)
	return res, writeArtifact(outPath, products)
}

// buildProduct validates and normalizes one raw record. A nil product with
// nil error means the record is a draft and excluded from output.
func buildProduct(raw map[string]any, file string) (*Product, error) {
	id := idFromFile(raw, file)
	name := asString(raw["name"])
	category := asString(raw["category"])

	if id == "" || name == "" || category == "" {
		return nil, fmt.Errorf("missing required fields (id, name, category) in %s", file)
	}
	if !Categories[category] {
		return nil, fmt.Errorf("invalid category %q for %s in %s", category, id, file)
	}

	status := asString(raw["status"])
	if status == "" {
		status = StatusActive
	}
	if status == StatusDraft {
		return nil, nil
	}
	// hidden stays in the output; browsing views filter it out

	variants, err := buildVariants(raw["variants"], id, file)
	if err != nil {
		return nil, err
	}

	return &Product{
		ID:          id,
		Name:        name,
		Description: asString(raw["description"]),
		Category:    category,
		Images:      normImages(raw["images"]),
		Variants:    variants,
		Tags:        normTags(raw["tags"]),
		Featured:    asBool(raw["featured"]),
		Status:      status,
		Sort:        numPtr(raw["sort"]),
		PublishedAt: asString(raw["publishedAt"]),
	}, nil
}

func buildVariants(v any, id, file string) ([]Variant, error) {
	var variants []Variant
	for _, entry := range asArray(v) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		variant := Variant{
			ID:            asString(m["id"]),
			Label:         asString(m["label"]),
			SKU:           asString(m["sku"]),
			StripePriceID: asString(m["stripePriceId"]),
			Price:         numPtr(m["price"]),
		}
		if variant.ID == "" || variant.Label == "" || variant.SKU == "" {
			return nil, fmt.Errorf("variant fields missing on %s in %s", id, file)
		}
		variants = append(variants, variant)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("at least one variant required for %s in %s", id, file)
	}
	return variants, nil
}

// sortProducts orders by explicit sort ascending, then publishedAt
// descending, then name ascending.
func sortProducts(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		as, bs := sortKey(a.Sort), sortKey(b.Sort)
		if as != bs {
			return as < bs
		}
		if a.PublishedAt != b.PublishedAt {
			return a.PublishedAt > b.PublishedAt
		}
		return a.Name < b.Name
	})
}
