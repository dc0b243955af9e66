// internal/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codevault/codevault-backend/internal/models"
)

func product(title, description, category, language string) models.Product {
	return models.Product{
		Title:       title,
		Description: description,
		Category:    category,
		Language:    language,
	}
}

func TestFilterMatchEmptyMatchesAll(t *testing.T) {
	f := Filter{}

	p := product("Rust Primer", "intro to rust", "tutorial", "rust")
	assert.True(t, f.Match(&p))

	empty := models.Product{}
	assert.True(t, f.Match(&empty))
}

func TestFilterMatchCategory(t *testing.T) {
	f := Filter{Category: "tutorial"}

	match := product("A", "B", "tutorial", "go")
	other := product("A", "B", "snippet", "go")

	assert.True(t, f.Match(&match))
	assert.False(t, f.Match(&other))
}

func TestFilterMatchLanguage(t *testing.T) {
	f := Filter{Language: "go"}

	match := product("A", "B", "tutorial", "go")
	other := product("A", "B", "tutorial", "python")

	assert.True(t, f.Match(&match))
	assert.False(t, f.Match(&other))
}

func TestFilterMatchSearchTitleOrDescription(t *testing.T) {
	f := Filter{Search: "rust"}

	byTitle := product("Rust Primer", "systems programming", "", "")
	byDescription := product("Fast JSON parser", "uses rust internally", "", "")
	neither := product("Go Primer", "a gopher's guide", "", "")

	assert.True(t, f.Match(&byTitle), "should match substring in title")
	assert.True(t, f.Match(&byDescription), "should match substring in description")
	assert.False(t, f.Match(&neither))
}

func TestFilterMatchSearchCaseInsensitive(t *testing.T) {
	f := Filter{Search: "RuSt"}

	p := product("RUST primer", "", "", "")
	assert.True(t, f.Match(&p))

	q := product("", "Uses Rust Internally", "", "")
	assert.True(t, f.Match(&q))
}

func TestFilterMatchConditionsAreANDed(t *testing.T) {
	f := Filter{Category: "tutorial", Language: "rust", Search: "primer"}

	all := product("Rust Primer", "", "tutorial", "rust")
	wrongCategory := product("Rust Primer", "", "snippet", "rust")
	wrongLanguage := product("Rust Primer", "", "tutorial", "go")
	wrongSearch := product("Rust Guide", "advanced patterns", "tutorial", "rust")

	assert.True(t, f.Match(&all))
	assert.False(t, f.Match(&wrongCategory))
	assert.False(t, f.Match(&wrongLanguage))
	assert.False(t, f.Match(&wrongSearch))
}
