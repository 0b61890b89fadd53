package listing

import (
	"math"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page is a validated 1-based page request.
type Page struct {
	Number  int
	PerPage int
}

// NewPage coerces page and perPage into range. page below 1 becomes 1; perPage outside
// 1..MaxPerPage becomes defaultPerPage. page is capped so that the offset fits in a
// signed 64-bit OFFSET.
func NewPage(page, perPage, defaultPerPage int) Page {
	if defaultPerPage <= 0 || defaultPerPage > MaxPerPage {
		defaultPerPage = DefaultPerPage
	}
	if page < 1 {
		page = DefaultPage
	}
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = defaultPerPage
	}
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return Page{Number: page, PerPage: perPage}
}

// ParsePage is NewPage for raw query-string values. Malformed numbers fall back to
// defaults instead of failing.
func ParsePage(page, perPage string, defaultPerPage int) Page {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultPage
	}
	pp, err := strconv.Atoi(perPage)
	if err != nil {
		pp = 0
	}
	return NewPage(p, pp, defaultPerPage)
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.PerPage)
}

// TotalPages is ceil(total/perPage); zero rows yield zero pages.
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
