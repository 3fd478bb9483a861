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

type ProfileRequest struct {
	Handle string `json:"handle" validate:"required,valid_handle"`
	Skip   int    `form:"t" json:"t" validate:"min=0"`
}

// ProfileResponse carries the profile's attribute fields inline, the
// way profile consumers read them, plus the drop page and follow
// state.
type ProfileResponse struct {
	Status     string              `json:"status"`
	ActiveUser string              `json:"activeUser"`
	Drops      []docstore.DropView `json:"tweets"`
	Followers  int                 `json:"followers"`
	FollowBtn  string              `json:"followBtn"`
	Avatar     string              `json:"avatar"`
	Banner     string              `json:"banner"`
	Bio        string              `json:"bio"`

	Program          string `json:"program"`
	Dept             string `json:"dept"`
	Year             string `json:"year"`
	Graduation       string `json:"graduation"`
	UndergradCollege string `json:"undergradCollege"`
	Specialization   string `json:"specialization"`
	CG               string `json:"cg"`
	LinkedIn         string `json:"linkedin"`
	Major            string `json:"major"`
}

func SetupProfile(router gin.IRouter, logger logger.Logger, db docstore.DB, validator *validation.Validator) {
	service := profile.New(logger, db)
	router.GET("/profile/:handle", handleGetProfile(service, logger, validator))
	router.POST("/user/:handle/follow/:target", handleFollow(service, logger, validator))
	router.POST("/avatar/:handle", handleAvatar(service, logger, validator))
	router.POST("/banner/:handle", handleBanner(service, logger, validator))
	router.POST("/update-profile/:handle", handleUpdateProfile(service, logger, validator))
}

func handleGetProfile(service *profile.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := ProfileRequest{Handle: c.Param("handle")}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from profile request", "err", err.Error())
			writeError(c, http.StatusUnprocessableEntity, "failed to extract request parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate profile request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		page, err := service.GetPage(request.Handle, c.GetString(ActiveUserKey), request.Skip)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				writeError(c, http.StatusNotFound, "No such user.")
				return
			}
			logger.Error("profile lookup failed", "handle", request.Handle, "err", err.Error())
			writeError(c, http.StatusInternalServerError, "Internal server error.")
			return
		}

		c.JSON(http.StatusOK, ProfileResponse{
			Status:     statusOK,
			ActiveUser: c.GetString(ActiveUserKey),
			Drops:      page.Drops,
			Followers:  page.Followers,
			FollowBtn:  page.FollowBtn,
			Avatar:     page.User.Avatar,
			Banner:     page.User.Banner,
			Bio:        page.User.Bio,

			Program:          page.User.Program,
			Dept:             page.User.Dept,
			Year:             page.User.Year,
			Graduation:       page.User.Graduation,
			UndergradCollege: page.User.UndergradCollege,
			Specialization:   page.User.Specialization,
			CG:               page.User.CG,
			LinkedIn:         page.User.LinkedIn,
			Major:            page.User.Major,
		})
	}
}
