// internal/catalog/page.go
package catalog

import "math"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a 1-indexed window over a result set.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalizes raw request values. Page numbers at or below zero
// are clamped to the first page rather than rejected; a missing or
// non-positive limit falls back to the default, an oversized one is
// clamped to MaxLimit.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pages returns ceil(total/limit).
func (p Page) Pages(total int64) int {
	return int(math.Ceil(float64(total) / float64(p.Limit)))
}
