package works

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

/*
	Artwork slugs
	-------------
	- "<slugified title>--<id>", recomputed from the current title
	- never persisted
	- the id is always after the LAST "--"
*/

const (
	slugDelimiter   = "--"
	slugFallbackKey = "artwork"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the value (full Unicode mapping) and collapses every
// run of characters outside [a-z0-9] into one hyphen.
// Example: "  Sunrise & Seas #3 " -> "sunrise-seas-3"
func Slugify(value string) string {
	s := cases.Lower(language.Und).String(strings.TrimSpace(value))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ArtworkSlug builds the URL segment for an artwork.
func ArtworkSlug(a Artwork) string {
	title := a.Title
	if title == "" {
		title = slugFallbackKey
	}
	base := Slugify(title)
	if base == "" {
		base = slugFallbackKey
	}
	return base + slugDelimiter + a.ID
}

// ArtworkIDFromSlug recovers the id from a slug. Input without a delimiter,
// or with nothing after it, is returned unchanged.
func ArtworkIDFromSlug(slug string) string {
	i := strings.LastIndex(slug, slugDelimiter)
	if i == -1 {
		return slug
	}
	if id := slug[i+len(slugDelimiter):]; id != "" {
		return id
	}
	return slug
}
