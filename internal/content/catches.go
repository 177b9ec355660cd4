package content

import (
	"path/filepath"
	"sort"
)

// BuildCatches bundles contentDir/*.json into a single validated, sorted
// catch array at outPath.
//
// The catch collection is the lenient variant: malformed files, imageless
// records, and duplicate ids are skipped with a warning and the build keeps
// going. A lureId pointing at an unknown product id is advisory and only
// warned about; knownLures may be nil when the product artifact is
// unavailable, which disables that check.
func BuildCatches(contentDir, outPath string, knownLures map[string]bool) (*Result, error) {
	res := &Result{}

	files, err := listContentFiles(contentDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return res, keepOrWriteEmpty(outPath, res)
	}

	catches := []Catch{}
	seen := make(map[string]bool)

	for _, file := range files {
		raw, err := readRawRecord(filepath.Join(contentDir, file))
		if err != nil {
			res.warnf("skipping %s: %v", file, err)
			continue
		}

		id := idFromFile(raw, file)
		status := asString(raw["status"])
		if status == "" {
			status = StatusPublished
		}
		if status == StatusDraft {
			continue
		}

		images := normImages(raw["images"])
		if len(images) == 0 {
			res.warnf("skipping %s: no usable images", file)
			continue
		}

		if seen[id] {
			res.warnf("skipping %s: duplicate catch id %q", file, id)
			continue
		}
		seen[id] = true

		lureID := asString(raw["lureId"])
		if lureID != "" && knownLures != nil && !knownLures[lureID] {
			res.warnf("%s: lureId %q does not match any product", file, lureID)
		}

		catches = append(catches, Catch{
			ID:          id,
			Title:       asString(raw["title"]),
			Date:        asString(raw["date"]),
			Angler:      asString(raw["angler"]),
			LureID:      lureID,
			Location:    asString(raw["location"]),
			Species:     asString(raw["species"]),
			LengthIn:    numPtr(raw["lengthIn"]),
			WeightLb:    numPtr(raw["weightLb"]),
			Tags:        normTags(raw["tags"]),
			Images:      images,
			Status:      status,
			Featured:    asBool(raw["featured"]),
			Sort:        numPtr(raw["sort"]),
			PublishedAt: asString(raw["publishedAt"]),
		})
	}

	sortCatches(catches)

	res.Records = len(catches)
	return res, writeArtifact(outPath, catches)
}

// sortCatches orders by explicit sort ascending, then publishedAt/date
// descending so the newest catches lead.
func sortCatches(catches []Catch) {
	sort.SliceStable(catches, func(i, j int) bool {
		a, b := catches[i], catches[j]
		as, bs := sortKey(a.Sort), sortKey(b.Sort)
		if as != bs {
			return as < bs
		}
		return a.dateKey() > b.dateKey()
	})
}
