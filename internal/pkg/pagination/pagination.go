package pagination

import (
	"math"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	// keeps (page-1)*limit far inside int range, also on 32-bit platforms
	maxPage = 1_000_000
)

// Pagination represents pagination metadata
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
	Offset  int   `json:"-"`
}

// Request is a parsed page/limit pair from the query string
type Request struct {
	Page  int
	Limit int
}

// Offset returns the number of documents to skip
func (r *Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

// New creates a new pagination instance
func New(page, limit int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}

	return &Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
		Offset:  (page - 1) * limit,
	}
}

// FromQuery parses page and limit query values. It returns nil when neither
// is present, meaning the caller asked for the whole collection.
func FromQuery(pageStr, limitStr string) *Request {
	if pageStr == "" && limitStr == "" {
		return nil
	}

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return &Request{Page: page, Limit: limit}
}
