package utils

import (
	"animalshop-backend/internal/shared/response"
)

// NormalizePagination clamps page/limit to sane defaults
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// Paginate slices items for the requested page and builds the meta block
func Paginate[T any](items []T, page, limit int) ([]T, *response.Meta) {
	page, limit = NormalizePagination(page, limit)

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	paged := make([]T, end-start)
	copy(paged, items[start:end])

	return paged, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
