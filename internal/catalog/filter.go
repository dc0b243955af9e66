// internal/catalog/filter.go
package catalog

import (
	"strings"

	"gorm.io/gorm"

	"github.com/codevault/codevault-backend/internal/models"
)

// Filter selects products from the catalog. Zero-value fields impose no
// constraint; present fields are combined with AND, except that a search
// term matches title OR description.
type Filter struct {
	Category string
	Language string
	Search   string
}

// Apply translates the filter into WHERE clauses on a product query.
func (f Filter) Apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	if f.Language != "" {
		query = query.Where("language = ?", f.Language)
	}

	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	return query
}

// Match is the in-memory mirror of Apply. The two must agree: Match is
// what the tests exercise, Apply is what production queries run.
func (f Filter) Match(p *models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.Language != "" && p.Language != f.Language {
		return false
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		title := strings.ToLower(p.Title)
		description := strings.ToLower(p.Description)
		if !strings.Contains(title, term) && !strings.Contains(description, term) {
			return false
		}
	}

	return true
}
