package handlers

import (
	"errors"
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/models"
	"campus-eats-api/services"
	"campus-eats-api/utils"

	"github.com/gin-gonic/gin"
)

// actorFrom resolves the authenticated caller into a User row, nil when
// the request carries no usable identity. Services receive this value
// explicitly instead of reading request context themselves.
func actorFrom(c *gin.Context, auth *services.AuthService) *models.User {
	id := middleware.GetUserID(c)
	if id == 0 {
		return nil
	}
	user, err := auth.UserByID(id)
	if err != nil {
		return nil
	}
	return user
}

// fail maps a service error onto the HTTP taxonomy.
func fail(c *gin.Context, err error) {
	c.JSON(errStatus(err), gin.H{"error": err.Error()})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrAccountDisabled),
		errors.Is(err, services.ErrOrderNotOwned),
		errors.Is(err, services.ErrAdminProtected):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateRating),
		errors.Is(err, services.ErrStorageConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidScore),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, utils.ErrBadImageType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
