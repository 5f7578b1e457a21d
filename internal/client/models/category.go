package models

import "strings"

// Category is one entry of the fixed category set. The set is loaded once at
// startup and never changes afterwards; IDs are unique within the set.
type Category struct {
	ID   string
	Name string
}

// FallbackCategoryName is returned by ResolveCategoryName when no candidate
// names exist at all.
const FallbackCategoryName = "General"

// DefaultCategories returns the built-in category set.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Work"},
		{ID: "2", Name: "Personal"},
		{ID: "3", Name: "Projects"},
		{ID: "4", Name: "Finance"},
	}
}

// ResolveCategoryName maps a raw model response onto the closed candidate
// set. Quotes and periods are stripped and the match is case-insensitive.
// When the response names no known candidate, the first candidate wins;
// with an empty candidate list the fixed fallback literal is returned.
// Callers therefore never observe a name outside the closed set.
func ResolveCategoryName(raw string, candidates []string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	cleaned = strings.TrimSpace(cleaned)

	for _, c := range candidates {
		if strings.EqualFold(c, cleaned) {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return FallbackCategoryName
}
