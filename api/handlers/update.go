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

type AvatarRequest struct {
	Handle string `json:"handle" validate:"required,valid_handle"`
	Avatar string `json:"avatar" validate:"required,valid_avatar"`
}

type BannerRequest struct {
	Handle string `json:"handle" validate:"required,valid_handle"`
	Banner string `json:"banner" validate:"max=500"`
}

type UpdateProfileRequest struct {
	Handle string `json:"handle" validate:"required,valid_handle"`
	Field  string `json:"field" validate:"required,valid_profile_field"`
	Value  string `json:"value" validate:"max=500"`
}

type AvatarResponse struct {
	Status string `json:"status"`
	Avatar string `json:"avatar"`
}

type updateResponse struct {
	Status string `json:"status"`
}

func handleAvatar(service *profile.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := AvatarRequest{}
		if !bindAndAuthorize(c, logger, &request, c.Param("handle")) {
			return
		}
		request.Handle = c.Param("handle")

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate avatar request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		if err := service.SetAvatar(request.Handle, request.Avatar); err != nil {
			respondUpdateError(c, logger, "avatar update failed", request.Handle, err)
			return
		}

		c.JSON(http.StatusOK, AvatarResponse{Status: statusOK, Avatar: request.Avatar})
	}
}

func handleBanner(service *profile.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := BannerRequest{}
		if !bindAndAuthorize(c, logger, &request, c.Param("handle")) {
			return
		}
		request.Handle = c.Param("handle")

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate banner request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		if err := service.SetBanner(request.Handle, request.Banner); err != nil {
			respondUpdateError(c, logger, "banner update failed", request.Handle, err)
			return
		}

		c.JSON(http.StatusOK, updateResponse{Status: statusOK})
	}
}

func handleUpdateProfile(service *profile.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := UpdateProfileRequest{}
		if !bindAndAuthorize(c, logger, &request, c.Param("handle")) {
			return
		}
		request.Handle = c.Param("handle")

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate update-profile request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		if err := service.UpdateField(request.Handle, request.Field, request.Value); err != nil {
			respondUpdateError(c, logger, "profile update failed", request.Handle, err)
			return
		}

		c.JSON(http.StatusOK, updateResponse{Status: statusOK})
	}
}

// bindAndAuthorize decodes the JSON body into request and rejects
// callers mutating a profile other than their own. It reports whether
// the handler should continue.
func bindAndAuthorize(c *gin.Context, logger logger.Logger, request any, handle string) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		logger.Warn("could not extract request body", "err", err.Error())
		writeError(c, http.StatusUnprocessableEntity, "failed to extract request body parameters")
		return false
	}

	if handle != c.GetString(ActiveUserKey) {
		writeError(c, http.StatusForbidden, "Cannot modify another user's profile.")
		return false
	}

	return true
}

func respondUpdateError(c *gin.Context, logger logger.Logger, msg, handle string, err error) {
	if errors.Is(err, docstore.ErrNotFound) {
		writeError(c, http.StatusNotFound, "No such user.")
		return
	}
	if errors.Is(err, docstore.ErrInvalidField) {
		writeError(c, http.StatusNotAcceptable, err.Error())
		return
	}
	logger.Error(msg, "handle", handle, "err", err.Error())
	writeError(c, http.StatusInternalServerError, "Internal server error.")
}
