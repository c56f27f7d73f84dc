package query

import (
	"truestate/internal/models"
)

// Window is the slice of the matching set a page covers, with its metadata.
type Window struct {
	Page       int
	Limit      int
	Offset     int
	Count      int
	TotalItems int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ResolveWindow derives the offset, expected record count and page-count
// metadata for a page. A page past the end yields Count 0, never an error.
// An empty result still reports one page.
func ResolveWindow(w models.PageWindow, totalMatching int64) Window {
	page := w.Page
	if page < 1 {
		page = 1
	}
	limit := w.Limit
	if limit < 1 {
		limit = models.DefaultPageLimit
	}
	if totalMatching < 0 {
		totalMatching = 0
	}

	offset := (page - 1) * limit

	totalPages := int((totalMatching + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	count := 0
	if remaining := totalMatching - int64(offset); remaining > 0 {
		count = limit
		if remaining < int64(limit) {
			count = int(remaining)
		}
	}

	return Window{
		Page:       page,
		Limit:      limit,
		Offset:     offset,
		Count:      count,
		TotalItems: totalMatching,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Pagination renders the window as response metadata.
func (w Window) Pagination() models.Pagination {
	return models.Pagination{
		CurrentPage:     w.Page,
		TotalPages:      w.TotalPages,
		TotalItems:      w.TotalItems,
		ItemsPerPage:    w.Limit,
		HasNextPage:     w.HasNext,
		HasPreviousPage: w.HasPrev,
	}
}

// SliceWindow returns records[offset:offset+limit], clipped to the slice.
func SliceWindow[T any](records []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) || limit <= 0 {
		return []T{}
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
