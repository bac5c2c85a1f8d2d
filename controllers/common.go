package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"artwala-io/gateway/helper"
	"artwala-io/gateway/state"
)

// pathID parses a numeric id path parameter, answering 400 on garbage.
// The bool result reports whether the caller should continue.
func pathID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		helper.HandleError(c, http.StatusBadRequest, err, "Invalid "+param)
		return 0, false
	}
	return id, true
}

// userSession resolves the session id path parameter against the registry.
func userSession(c *gin.Context, registry *state.Registry) (*state.UserSession, bool) {
	session, ok := registry.User(c.Param("sid"))
	if !ok {
		helper.HandleError(c, http.StatusNotFound, state.ErrSessionNotFound, "Dashboard session not found")
		return nil, false
	}
	return session, true
}

func artistSession(c *gin.Context, registry *state.Registry) (*state.ArtistSession, bool) {
	session, ok := registry.Artist(c.Param("sid"))
	if !ok {
		helper.HandleError(c, http.StatusNotFound, state.ErrSessionNotFound, "Dashboard session not found")
		return nil, false
	}
	return session, true
}

// handleMutationError maps engine outcomes onto the response envelope:
// duplicate notices and terminal-state refusals are 409s carrying the
// user-visible message, missing entities are 404s.
func handleMutationError(c *gin.Context, err error) {
	switch {
	case state.IsNotice(err):
		helper.HandleError(c, http.StatusConflict, err, err.Error())
	case err == state.ErrCommissionResolved:
		helper.HandleError(c, http.StatusConflict, err, "This commission request has already been resolved.")
	case err == state.ErrProductNotFound, err == state.ErrArtistNotFound,
		err == state.ErrForumNotFound, err == state.ErrCommissionNotFound:
		helper.HandleError(c, http.StatusNotFound, err, err.Error())
	default:
		if _, ok := err.(validator.ValidationErrors); ok {
			helper.HandleError(c, http.StatusBadRequest, err, "Title, price and description are required")
			return
		}
		helper.HandleError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

// CloseDashboard tears down either role's session.
// DELETE /api/dashboard/user/:sid and /api/dashboard/artist/:sid
func CloseDashboard(registry *state.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !registry.Close(c.Param("sid")) {
			helper.HandleError(c, http.StatusNotFound, state.ErrSessionNotFound, "Dashboard session not found")
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "Dashboard session closed", nil)
	}
}
