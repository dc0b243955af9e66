// internal/handlers/common_test.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/codevault/codevault-backend/internal/services"
)

func TestHandleServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
		{"product not found", services.ErrProductNotFound, http.StatusNotFound},
		{"email taken", services.ErrEmailTaken, http.StatusBadRequest},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid rating", services.ErrInvalidRating, http.StatusBadRequest},
		{"bad file payload", services.ErrInvalidFilePayload, http.StatusBadRequest},
		{"wrapped bad file payload",
			fmt.Errorf("%w: malformed data URI", services.ErrInvalidFilePayload),
			http.StatusBadRequest},
		{"upload failed", services.ErrUploadFailed, http.StatusInternalServerError},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handleServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
