package pagination

// Pagination describes one page of a result set. Page is 1-based at the
// interface; Offset translates it for the store.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

func New(page, pageSize int, totalItems int64) Pagination {
	totalPages := int(totalItems) / pageSize
	if int(totalItems)%pageSize != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}
