// internal/catalog/engine_test.go
package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevault/codevault-backend/internal/models"
)

func TestProductViewExposesUsernamesOnly(t *testing.T) {
	now := time.Now()
	p := models.Product{
		Title:   "Go LRU cache",
		Price:   12.5,
		FileURL: "https://cdn.example.com/code-files/cache.zip",
		Author: models.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "bcrypt-hash",
			AvatarURL:    "https://cdn.example.com/avatars/alice.png",
			LastLoginAt:  &now,
		},
		Ratings: []models.Rating{
			{
				Score:  5,
				Review: "solid",
				User: models.User{
					Username: "bob",
					Email:    "bob@example.com",
				},
			},
		},
	}

	view := NewProductView(&p)

	assert.Equal(t, AuthorRef{Username: "alice"}, view.Author)
	require.Len(t, view.Ratings, 1)
	assert.Equal(t, AuthorRef{Username: "bob"}, view.Ratings[0].User)
	assert.Equal(t, 5, view.Ratings[0].Score)

	body, err := json.Marshal(view)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"username":"alice"`)
	assert.Contains(t, string(body), `"username":"bob"`)
	assert.NotContains(t, string(body), "email")
	assert.NotContains(t, string(body), "alice@example.com")
	assert.NotContains(t, string(body), "bob@example.com")
	assert.NotContains(t, string(body), "avatar_url")
	assert.NotContains(t, string(body), "last_login_at")
}

func TestProductViewNoRatings(t *testing.T) {
	p := models.Product{
		Title:  "Empty",
		Author: models.User{Username: "alice"},
	}

	view := NewProductView(&p)

	assert.NotNil(t, view.Ratings)
	assert.Empty(t, view.Ratings)
}
