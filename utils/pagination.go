package utils

// Pagination is the envelope returned with every paginated list
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// NormalizePage applies the default page and limit (1 and 10) and
// rejects nonsense values
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// MaxLimit caps how many records a single request may ask for
const MaxLimit = 100

// NormalizeLimit applies the default limit (10) and caps oversized
// requests at MaxLimit
func NormalizeLimit(limit int) int {
	if limit < 1 {
		return 10
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// PageCount returns the number of pages needed for total records
func PageCount(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
