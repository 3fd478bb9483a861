package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
	"github.com/Utkarsh123xd/Student-Sphere/services/profile"
	"github.com/Utkarsh123xd/Student-Sphere/validation"
)

type FollowRequest struct {
	Handle string `json:"handle" validate:"required,valid_handle"`
	Target string `json:"target" validate:"required,valid_handle"`
}

type FollowResponse struct {
	Status    string `json:"status"`
	Followers int    `json:"followers"`
	FollowBtn string `json:"followBtn"`
}

func handleFollow(service *profile.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := FollowRequest{
			Handle: c.Param("handle"),
			Target: c.Param("target"),
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate follow request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		// The path names the acting user; it must be the token's user.
		if request.Handle != c.GetString(ActiveUserKey) {
			writeError(c, http.StatusForbidden, "Cannot follow on behalf of another user.")
			return
		}
		if request.Handle == request.Target {
			writeError(c, http.StatusNotAcceptable, "Cannot follow yourself.")
			return
		}

		state, err := service.ToggleFollow(request.Handle, request.Target)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				writeError(c, http.StatusNotFound, "No such user.")
				return
			}
			logger.Error("follow toggle failed", "handle", request.Handle, "target", request.Target, "err", err.Error())
			writeError(c, http.StatusInternalServerError, "Internal server error.")
			return
		}

		c.JSON(http.StatusOK, FollowResponse{
			Status:    statusOK,
			Followers: state.Followers,
			FollowBtn: state.FollowBtn,
		})
	}
}
