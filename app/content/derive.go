package content

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	// DefaultExcerptLength caps auto-generated excerpts.
	DefaultExcerptLength = 150

	// DefaultWordsPerMinute is the reading speed used for read-time estimates.
	DefaultWordsPerMinute = 200
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	slugCleanPattern  = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Slugify converts a title to a URL-safe slug.
//
// The transformation rules are:
//   - Everything is lowercased
//   - Characters outside [a-z0-9 -] are removed
//   - Whitespace runs collapse to a single hyphen
//   - Leading and trailing hyphens are trimmed
//
// This is a pure function with no side effects. Slugify is idempotent:
// running it on its own output returns the same slug. An empty title
// yields an empty slug.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugCleanPattern.ReplaceAllString(slug, "")
	slug = whitespacePattern.ReplaceAllString(strings.TrimSpace(slug), "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug derives a slug from title and disambiguates it when exists
// reports a collision, by appending the given timestamp suffix.
func UniqueSlug(title string, timestamp int64, exists func(slug string) bool) string {
	slug := Slugify(title)
	if exists == nil || !exists(slug) {
		return slug
	}
	return fmt.Sprintf("%s-%d", slug, timestamp)
}

// Excerpt produces a plain-text excerpt from rich content. Markup tags are
// stripped, the result is truncated to maxLength with trailing whitespace
// trimmed, and "..." is appended only when truncation occurred.
func Excerpt(rawContent string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	text := []rune(StripTags(rawContent))
	if len(text) <= maxLength {
		return string(text)
	}
	return strings.TrimRight(string(text[:maxLength]), " \t\n") + "..."
}

// ReadTime estimates reading time for rich content at the given
// words-per-minute rate and formats it as "<n> min read". The word count is
// divided by the rate and rounded up. Empty or whitespace-only content
// floors at "1 min read".
func ReadTime(rawContent string, wordsPerMinute int) string {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := len(strings.Fields(StripTags(rawContent)))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// StripTags removes markup tags from content, leaving plain text.
func StripTags(rawContent string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(rawContent, ""))
}
