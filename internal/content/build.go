package content

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Paths fixes where the build reads content and writes artifacts.
type Paths struct {
	ProductsDir string
	CatchesDir  string
	ProductsOut string
	CatchesOut  string
	SitemapOut  string
	SiteURL     string
}

// DefaultPaths returns the build layout rooted at contentDir/dataDir/publicDir.
func DefaultPaths(contentDir, dataDir, publicDir, siteURL string) Paths {
	return Paths{
		ProductsDir: filepath.Join(contentDir, "products"),
		CatchesDir:  filepath.Join(contentDir, "catches"),
		ProductsOut: filepath.Join(dataDir, "products.json"),
		CatchesOut:  filepath.Join(dataDir, "catches.json"),
		SitemapOut:  filepath.Join(publicDir, "sitemap.xml"),
		SiteURL:     siteURL,
	}
}

// Result reports what a single collection build produced.
type Result struct {
	Records      int
	Warnings     []string
	KeptExisting bool
}

func (r *Result) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	log.Printf("[content] warning: %s", msg)
}

// BuildAll runs both collection builds and the sitemap. Products build first
// so the catch build can check lure cross-references against fresh ids.
func BuildAll(p Paths) error {
	products, err := BuildProducts(p.ProductsDir, p.ProductsOut)
	if err != nil {
		return fmt.Errorf("products build: %w", err)
	}
	log.Printf("[content] wrote %d products -> %s", products.Records, p.ProductsOut)

	catches, err := BuildCatches(p.CatchesDir, p.CatchesOut, productIDs(p.ProductsOut))
	if err != nil {
		return fmt.Errorf("catches build: %w", err)
	}
	log.Printf("[content] wrote %d catches -> %s", catches.Records, p.CatchesOut)

	if err := BuildSitemap(p.ProductsOut, p.SitemapOut, p.SiteURL); err != nil {
		return fmt.Errorf("sitemap build: %w", err)
	}

	return nil
}

// productIDs reads the built product artifact for cross-reference checks.
// A missing or unreadable artifact yields no known ids, which only degrades
// dangling-reference warnings, never the build.
func productIDs(productsOut string) map[string]bool {
	data, err := os.ReadFile(productsOut)
	if err != nil {
		return nil
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	ids := make(map[string]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}
	return ids
}

// listContentFiles returns the collection's *.json files in name order.
// A missing directory is not an error; content may not be staged yet.
func listContentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func readRawRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// idFromFile derives a record id from the id field or, if absent, the filename.
func idFromFile(raw map[string]any, file string) string {
	if id := asString(raw["id"]); id != "" {
		return id
	}
	return strings.TrimSuffix(file, ".json")
}

// writeArtifact pretty-prints the array to the output path, creating the
// directory if absent.
func writeArtifact(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// keepOrWriteEmpty applies the no-content policy: a previously emitted
// artifact that still parses is left untouched so that build automation
// running before content is staged does not clobber good output. Otherwise
// an empty array is written. The kept case is logged as a warning because it
// is indistinguishable from a misconfigured content path.
func keepOrWriteEmpty(outPath string, res *Result) error {
	existing, err := os.ReadFile(outPath)
	if err == nil && json.Valid(existing) {
		res.KeptExisting = true
		res.warnf("content source empty — kept existing artifact %s", outPath)
		return nil
	}
	log.Printf("[content] no content — wrote empty %s", outPath)
	return writeArtifact(outPath, []any{})
}
