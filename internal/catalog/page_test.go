// internal/catalog/page_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevault/codevault-backend/internal/models"
)

func TestNewPageNormalization(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		limit      int
		wantNumber int
		wantLimit  int
	}{
		{"valid values pass through", 3, 25, 3, 25},
		{"zero page clamps to first", 0, 10, 1, 10},
		{"negative page clamps to first", -5, 10, 1, 10},
		{"zero limit falls back to default", 1, 0, 1, DefaultLimit},
		{"negative limit falls back to default", 1, -1, 1, DefaultLimit},
		{"oversized limit clamps to cap", 1, MaxLimit + 1, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.limit)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, NewPage(1, 10).Offset())
	assert.Equal(t, 10, NewPage(2, 10).Offset())
	assert.Equal(t, 40, NewPage(5, 10).Offset())
	assert.Equal(t, 0, NewPage(-3, 10).Offset())
}

func TestPagePagesCeiling(t *testing.T) {
	p := NewPage(1, 10)

	assert.Equal(t, 0, p.Pages(0))
	assert.Equal(t, 1, p.Pages(1))
	assert.Equal(t, 1, p.Pages(10))
	assert.Equal(t, 2, p.Pages(11))
	assert.Equal(t, 3, p.Pages(30))
	assert.Equal(t, 4, p.Pages(31))
}

// paginate mirrors the query plan List runs against the store: filter,
// then slice by offset and limit over a stable ordering.
func paginate(ordered []models.Product, f Filter, p Page) []models.Product {
	var matched []models.Product
	for i := range ordered {
		if f.Match(&ordered[i]) {
			matched = append(matched, ordered[i])
		}
	}

	start := p.Offset()
	if start >= len(matched) {
		return nil
	}
	end := start + p.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}

func TestPaginationCoversMatchingSetExactlyOnce(t *testing.T) {
	var ordered []models.Product
	for i := 0; i < 37; i++ {
		category := "tools"
		if i%3 == 0 {
			category = "tutorial"
		}
		ordered = append(ordered, product(fmt.Sprintf("product-%02d", i), "", category, "go"))
	}

	f := Filter{Category: "tools"}

	var matchTotal int64
	for i := range ordered {
		if f.Match(&ordered[i]) {
			matchTotal++
		}
	}

	limit := 5
	pages := NewPage(1, limit).Pages(matchTotal)

	seen := make(map[string]int)
	for n := 1; n <= pages; n++ {
		page := paginate(ordered, f, NewPage(n, limit))
		require.LessOrEqual(t, len(page), limit, "page %d exceeds limit", n)
		for _, p := range page {
			seen[p.Title]++
		}
	}

	assert.Equal(t, int(matchTotal), len(seen), "union of pages must equal matching set")
	for title, count := range seen {
		assert.Equal(t, 1, count, "product %s appeared more than once", title)
	}

	// One past the last page is empty.
	assert.Empty(t, paginate(ordered, f, NewPage(pages+1, limit)))
}
