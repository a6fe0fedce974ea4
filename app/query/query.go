// Package query filters, sorts and paginates in-memory post collections for
// the blog listing pages. Every function is a pure transformation: the input
// slice is never mutated and the same inputs always produce the same output
// in the collection's insertion order.
package query

import (
	"sort"
	"strings"

	"harborlight/app/models"
)

// AllCategories is the sentinel category that disables category filtering.
const AllCategories = "All Categories"

// DefaultPageSize is used when a filter does not specify one.
const DefaultPageSize = 9

// Filter is the explicit filter state for one listing query.
//
// Caller contract: changing Search or Category invalidates the current page;
// callers must reset Page to 1 whenever either predicate changes, otherwise
// an out-of-range page returns an empty slice.
type Filter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

// Page is one filtered, paginated view over a post collection.
type Page struct {
	Posts      []*models.Post `json:"posts"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

// Apply runs the filter over posts and returns the requested page.
//
// Category matching: a post is included iff the filter category is empty,
// AllCategories, or equal to the post's category. Search matching is a
// case-insensitive substring test against the title or the excerpt; body
// content is deliberately not searched.
func Apply(posts []*models.Post, f Filter) Page {
	filtered := Matching(posts, f)

	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Posts:      filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

// Matching returns the posts satisfying the filter's predicates, in the
// collection's original order, ignoring pagination.
func Matching(posts []*models.Post, f Filter) []*models.Post {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	filtered := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if !matchesCategory(p, f.Category) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesCategory(p *models.Post, category string) bool {
	return category == "" || category == AllCategories || p.Category == category
}

func matchesSearch(p *models.Post, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Excerpt), search)
}

// SortPostsByDate returns a new slice sorted by publication date. Descending
// (newest first) is the default; the sort is stable, so posts sharing a date
// keep their relative order.
func SortPostsByDate(posts []*models.Post, ascending bool) []*models.Post {
	sorted := make([]*models.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].PublishedAt.Before(sorted[j].PublishedAt)
		}
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}

// Categories returns the distinct categories present in posts, in first-seen
// order, prefixed with the AllCategories sentinel.
func Categories(posts []*models.Post) []string {
	seen := make(map[string]bool)
	out := []string{AllCategories}
	for _, p := range posts {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
