package extract

import (
	"context"
	"strings"

	"github.com/jayaanth/tweetvoice"
)

// Separators used when joining assembled text.
const (
	paragraphSeparator = "\n\n"
	fragmentSeparator  = " "
)

// Assemble turns located elements into one normalized string.
//
// Grouped containers have their fragment descendants concatenated without a
// separator, since they form one visual run split across styling spans.
// Flat fallback fragments are joined with spaces.
func Assemble(ctx context.Context, r tweetvoice.Renderer, loc *Located, fragments tweetvoice.Pattern) (string, error) {
	if loc.Structured() {
		blocks := make([]string, 0, len(loc.Containers))
		for _, c := range loc.Containers {
			block, err := containerText(ctx, r, c, fragments)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, block)
		}
		return JoinGrouped(blocks), nil
	}

	texts, err := readAll(ctx, r, loc.Fragments)
	if err != nil {
		return "", err
	}
	return JoinFlat(texts), nil
}

// containerText concatenates the text of a container's fragment descendants.
func containerText(ctx context.Context, r tweetvoice.Renderer, container tweetvoice.Element, fragments tweetvoice.Pattern) (string, error) {
	if fragments.Selector == "" {
		return r.ReadText(ctx, container)
	}

	els, err := r.QueryAll(ctx, fragments, container)
	if err != nil {
		return "", err
	}
	texts, err := readAll(ctx, r, els)
	if err != nil {
		return "", err
	}
	return strings.Join(texts, ""), nil
}

func readAll(ctx context.Context, r tweetvoice.Renderer, els []tweetvoice.Element) ([]string, error) {
	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := r.ReadText(ctx, el)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// JoinGrouped trims each block, drops empty ones and joins the rest with a
// blank line so paragraph structure survives.
func JoinGrouped(blocks []string) string {
	return joinTrimmed(blocks, paragraphSeparator)
}

// JoinFlat trims each fragment, drops empty ones and joins the rest with
// single spaces.
func JoinFlat(fragments []string) string {
	return joinTrimmed(fragments, fragmentSeparator)
}

func joinTrimmed(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// CleanTitle trims the title and removes a trailing site suffix.
func CleanTitle(title, suffix string) string {
	title = strings.TrimSpace(title)
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		title = strings.TrimSuffix(title, suffix)
	}
	return strings.TrimSpace(title)
}
