package incident

// TotalPages returns ceil(total/pageSize), 0 for an empty sequence.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of size pageSize, clipped to the
// sequence bounds. A page past the end yields an empty slice.
func Paginate[T any](seq []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(seq) {
		return nil
	}
	end := start + pageSize
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}

// NextPage advances by one page, clamping at the last page. With zero
// pages the current page stays at 1.
func NextPage(page, totalPages int) int {
	if totalPages == 0 {
		return 1
	}
	if page >= totalPages {
		return totalPages
	}
	return page + 1
}

// PrevPage steps back one page, clamping at page 1.
func PrevPage(page int) int {
	if page <= 1 {
		return 1
	}
	return page - 1
}
