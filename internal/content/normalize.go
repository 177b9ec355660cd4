package content

import "math"

// Normalization helpers for loosely-shaped author JSON. Content files come
// from a Git-backed CMS and a text editor in equal measure, so every field
// is treated as untrusted.

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asNumber(v any) (float64, bool) {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func asArray(v any) []any {
	if a, ok := v.([]any); ok {
		return a
	}
	return nil
}

func numPtr(v any) *float64 {
	if n, ok := asNumber(v); ok {
		return &n
	}
	return nil
}

// normImages accepts bare string URLs or objects carrying src/url/image keys
// and drops entries that resolve to no source string.
func normImages(v any) []Image {
	var out []Image
	for _, entry := range asArray(v) {
		switch x := entry.(type) {
		case string:
			if x != "" {
				out = append(out, Image{Src: x})
			}
		case map[string]any:
			src := asString(x["src"])
			if src == "" {
				src = asString(x["url"])
			}
			if src == "" {
				src = asString(x["image"])
			}
			if src == "" {
				continue
			}
			out = append(out, Image{
				Src:    src,
				Alt:    asString(x["alt"]),
				Width:  numPtr(x["width"]),
				Height: numPtr(x["height"]),
			})
		}
	}
	return out
}

// normTags coerces tags to an array of non-empty strings. The result is
// never nil so the artifact carries [] rather than null.
func normTags(v any) []string {
	out := []string{}
	for _, entry := range asArray(v) {
		if s := asString(entry); s != "" {
			out = append(out, s)
		}
	}
	return out
}
