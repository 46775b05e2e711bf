package dtos

// PaginationMeta mirrors the envelope shape the frontend consumes.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	From        int   `json:"from"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	To          int   `json:"to"`
	Total       int64 `json:"total"`
}

type PaginatedResponse struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func NewPaginationMeta(page, perPage int, total int64) PaginationMeta {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	from := (page-1)*perPage + 1
	to := page * perPage
	if total == 0 || int64(from) > total {
		from = 0
		to = 0
	} else if int64(to) > total {
		to = int(total)
	}

	return PaginationMeta{
		CurrentPage: page,
		From:        from,
		LastPage:    lastPage,
		PerPage:     perPage,
		To:          to,
		Total:       total,
	}
}
