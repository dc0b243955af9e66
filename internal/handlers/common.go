// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/codevault/codevault-backend/internal/services"
	"github.com/codevault/codevault-backend/internal/utils"
)

// handleServiceError maps service failures onto the HTTP error
// taxonomy. Unexpected errors are logged server-side and surface as a
// generic 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, services.ErrUserNotFound.Error())
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, services.ErrProductNotFound.Error())
	case errors.Is(err, services.ErrEmailTaken):
		utils.BadRequestResponse(c, services.ErrEmailTaken.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrInvalidRating):
		utils.BadRequestResponse(c, services.ErrInvalidRating.Error())
	case errors.Is(err, services.ErrInvalidFilePayload):
		utils.BadRequestResponse(c, services.ErrInvalidFilePayload.Error())
	case errors.Is(err, services.ErrUploadFailed):
		logrus.WithError(err).Error("Upstream upload failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, services.ErrUploadFailed.Error())
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c)
	}
}
