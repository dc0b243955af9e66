// internal/handlers/product_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/codevault/codevault-backend/internal/catalog"
)

func listQueryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products?"+rawQuery, nil)
	return c
}

func TestParseListQueryDefaults(t *testing.T) {
	filter, page := parseListQuery(listQueryContext(t, ""))

	assert.Equal(t, catalog.Filter{}, filter)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, catalog.DefaultLimit, page.Limit)
}

func TestParseListQueryFilters(t *testing.T) {
	filter, page := parseListQuery(listQueryContext(t,
		"page=3&limit=25&category=web&language=Go&search=parser"))

	assert.Equal(t, "web", filter.Category)
	assert.Equal(t, "Go", filter.Language)
	assert.Equal(t, "parser", filter.Search)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 25, page.Limit)
	assert.Equal(t, 50, page.Offset())
}

func TestParseListQueryNormalizesBadValues(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"zero page", "page=0", 1, catalog.DefaultLimit},
		{"negative page", "page=-4", 1, catalog.DefaultLimit},
		{"non-numeric page", "page=abc", 1, catalog.DefaultLimit},
		{"zero limit", "limit=0", 1, catalog.DefaultLimit},
		{"limit above cap", "limit=5000", 1, catalog.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, page := parseListQuery(listQueryContext(t, tt.query))
			assert.Equal(t, tt.wantPage, page.Number)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}
