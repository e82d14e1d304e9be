package tweetvoice

import "strings"

// Variant selects which extraction pipeline runs for a URL.
type Variant string

// Variant constants.
const (
	// ShortForm is a single post: no scrolling, first container only.
	ShortForm Variant = "short"

	// LongForm is an article rendered as many blocks behind lazy loading.
	LongForm Variant = "long"
)

// ParseVariant converts user input into a Variant.
// Accepts "short", "tweet", "post", "long", "article" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "tweet", "post":
		return ShortForm, nil
	case "long", "article", "longform":
		return LongForm, nil
	}
	return "", Errorf(EINVALID, "unknown variant %q", s)
}

// Stage identifies a step of the extraction pipeline.
type Stage string

// Stage constants, in pipeline order.
const (
	StageNavigate Stage = "navigate"
	StageSettle   Stage = "settle"
	StageLocate   Stage = "locate"
	StageAssemble Stage = "assemble"
	StageTitle    Stage = "title"
)
