package content

import (
	"encoding/json"
	"encoding/xml"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap emits a sitemap.xml covering the static routes and the public
// product detail pages. Hidden products are excluded; the sitemap should not
// advertise pages default browsing cannot reach.
func BuildSitemap(productsPath, outPath, siteURL string) error {
	site := strings.TrimRight(siteURL, "/")

	var products []Product
	if data, err := os.ReadFile(productsPath); err == nil {
		// an unreadable artifact just yields a static-routes-only sitemap
		_ = json.Unmarshal(data, &products)
	}

	urls := []sitemapURL{
		{Loc: site + "/", ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: site + "/catalog", ChangeFreq: "weekly", Priority: "0.7"},
		{Loc: site + "/gallery", ChangeFreq: "weekly", Priority: "0.6"},
		{Loc: site + "/about", ChangeFreq: "yearly", Priority: "0.3"},
	}

	for _, p := range products {
		if p.Status == StatusHidden {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        site + "/product/" + url.PathEscape(p.ID),
			LastMod:    lastMod(p.PublishedAt),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  dedupeURLs(urls),
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(outPath, append([]byte(xml.Header), append(body, '\n')...), 0644)
}

func lastMod(publishedAt string) string {
	if t, err := time.Parse(time.RFC3339, publishedAt); err == nil {
		return t.Format("2006-01-02")
	}
	if len(publishedAt) >= 10 {
		if t, err := time.Parse("2006-01-02", publishedAt[:10]); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return time.Now().Format("2006-01-02")
}

func dedupeURLs(urls []sitemapURL) []sitemapURL {
	seen := make(map[string]bool, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if seen[u.Loc] {
			continue
		}
		seen[u.Loc] = true
		out = append(out, u)
	}
	return out
}
