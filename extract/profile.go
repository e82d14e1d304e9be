package extract

import (
	"time"

	"github.com/jayaanth/tweetvoice"
)

// X DOM patterns. X changes its markup without notice; update these when
// extraction breaks.
var (
	// Long-form article blocks, most specific first.
	articleNarrow  = tweetvoice.Pattern{Name: "longform-narrow", Selector: "div.longform-unstyled-narrow"}
	articleBlock   = tweetvoice.Pattern{Name: "data-block", Selector: "div[data-block='true']"}
	articleGeneric = tweetvoice.Pattern{Name: "longform-class", Selector: "div[class*='longform']"}

	// Text runs inside article blocks. Also the article content signal.
	articleText = tweetvoice.Pattern{Name: "data-text", Selector: "span[data-text='true']"}

	// Post body containers.
	postText = tweetvoice.Pattern{Name: "tweet-text", Selector: "div[data-testid='tweetText']"}
	postLang = tweetvoice.Pattern{Name: "tweet-lang", Selector: "article[data-testid='tweet'] div[lang]"}

	// Post root. Also the scope of the post content signal.
	postArticle = tweetvoice.Pattern{Name: "tweet-article", Selector: "article[data-testid='tweet']"}

	// Leaf spans only; X nests spans around links and emoji.
	postFallback = tweetvoice.Pattern{Name: "tweet-leaf-span", Selector: "span:not(:has(span))"}

	documentBody = tweetvoice.Pattern{Name: "body", Selector: "body"}
)

// TitleSuffix is the site marker X appends to page titles.
const TitleSuffix = " / X"

// Load timeouts.
const (
	// DefaultNavigateTimeout bounds page navigation up to the load event.
	DefaultNavigateTimeout = 30 * time.Second

	// DefaultReadyTimeout bounds the wait for the readiness pattern.
	DefaultReadyTimeout = 20 * time.Second
)

// Profile describes how one variant is extracted.
type Profile struct {
	Variant tweetvoice.Variant

	// NavigateTimeout bounds navigation. Zero means DefaultNavigateTimeout.
	NavigateTimeout time.Duration

	// Ready must match before the page counts as loaded.
	Ready        tweetvoice.Pattern
	ReadyTimeout time.Duration

	// RenderDelay is a fixed wait after readiness for async rendering.
	RenderDelay time.Duration

	// Scroll enables scroll-completion detection.
	Scroll bool

	// Containers are tried in priority order; the first non-empty wins.
	Containers []tweetvoice.Pattern

	// Fragments selects the text-bearing descendants of a container.
	// An empty selector reads the container's own text.
	Fragments tweetvoice.Pattern

	// Fallback is the content-signal pattern used when no container matches.
	Fallback tweetvoice.Pattern

	// FallbackScope restricts Fallback to the first element it matches.
	// An empty selector queries the whole document.
	FallbackScope tweetvoice.Pattern

	// MaxContainers keeps only the first N containers. Zero keeps all.
	MaxContainers int

	// TitleSuffix is stripped from the end of the page title.
	TitleSuffix string
}

// LongFormProfile extracts X articles.
func LongFormProfile() Profile {
	return Profile{
		Variant:         tweetvoice.LongForm,
		NavigateTimeout: DefaultNavigateTimeout,
		Ready:           documentBody,
		ReadyTimeout:    DefaultReadyTimeout,
		RenderDelay:     4 * time.Second,
		Scroll:          true,
		Containers:      []tweetvoice.Pattern{articleNarrow, articleBlock, articleGeneric},
		Fragments:       articleText,
		Fallback:        articleText,
		TitleSuffix:     TitleSuffix,
	}
}

// ShortFormProfile extracts a single X post. Replies on a status page share
// the post's markup, so only the first container in document order is kept
// and the fallback reads only the first article. Post containers are read
// whole because their spans nest around links, mentions and emoji.
//
// Readiness waits for the post root rather than its text container so that
// the lower-priority patterns still run when the text markup drifts.
func ShortFormProfile() Profile {
	return Profile{
		Variant:         tweetvoice.ShortForm,
		NavigateTimeout: DefaultNavigateTimeout,
		Ready:           postArticle,
		ReadyTimeout:    DefaultReadyTimeout,
		RenderDelay:     2 * time.Second,
		Containers:      []tweetvoice.Pattern{postText, postLang},
		Fallback:        postFallback,
		FallbackScope:   postArticle,
		MaxContainers:   1,
		TitleSuffix:     TitleSuffix,
	}
}
