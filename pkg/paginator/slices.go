package paginator

// PaginateSlice cuts one page out of an in-memory result set and reports
// pagination metadata alongside it. The query is adjusted first, so callers
// can pass raw request values.
func PaginateSlice[T any](items []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()

	meta := Paginator{
		Total:       int64(len(items)),
		PerPage:     query.Limit,
		CurrentPage: query.Page,
	}

	start := query.Offset()
	if start >= meta.Total {
		return []T{}, meta
	}

	end := start + query.Limit
	if end > meta.Total {
		end = meta.Total
	}

	page := items[start:end]
	meta.Count = int64(len(page))

	return page, meta
}
