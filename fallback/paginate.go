package fallback

import (
	"strings"

	"github.com/jrsteele09/temco-admin/services"
)

// Paginate slices items into a zero based page. match filters items against the
// trimmed, lower-cased search term when the term is not empty.
func Paginate[T any](items []T, params services.ListParams, match func(item T, term string) bool) *services.Page[T] {
	if params.Page < 0 {
		params.Page = services.DefaultPage
	}
	if params.Size <= 0 {
		params.Size = services.DefaultPageSize
	}
	params.Size = min(params.Size, services.MaxPageSize)

	term := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := items
	if term != "" && match != nil {
		filtered = make([]T, 0, len(items))
		for _, item := range items {
			if match(item, term) {
				filtered = append(filtered, item)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + params.Size - 1) / params.Size
	start := total
	if params.Page <= total/params.Size {
		start = min(params.Page*params.Size, total)
	}
	end := min(start+params.Size, total)

	content := make([]T, end-start)
	copy(content, filtered[start:end])

	return &services.Page[T]{
		Content:       content,
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: int64(total),
		TotalPages:    totalPages,
		First:         params.Page == 0,
		Last:          params.Page >= totalPages-1,
	}
}

// ContainsFold reports whether any field contains the lower-cased term.
func ContainsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
