package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
	"github.com/Utkarsh123xd/Student-Sphere/services/search"
	"github.com/Utkarsh123xd/Student-Sphere/validation"
)

// ActiveUserKey is the gin context key under which the auth middleware
// stores the authenticated username.
const ActiveUserKey = "activeUser"

type SearchRequest struct {
	Fragment string `json:"fragment" validate:"required,valid_query,min=1,max=1000"`
	Skip     int    `form:"skip" json:"skip" validate:"min=0"`
	Limit    int    `form:"limit" json:"limit" validate:"min=0,max=100"`
}

func (r *SearchRequest) setDefaults() {
	if r.Limit == 0 {
		r.Limit = search.DefaultLimit
	}
}

type SearchResponse struct {
	Status          string                `json:"status"`
	ActiveUser      string                `json:"activeUser"`
	Users           []docstore.ScoredUser `json:"users"`
	Drops           []docstore.DropView   `json:"tweets"`
	Recommendations Recommendations       `json:"recommendations"`
}

type Recommendations struct {
	TopTags []string `json:"topTags"`
}

func SetupSearch(router gin.IRouter, logger logger.Logger, db docstore.DB, validator *validation.Validator) {
	service := search.New(logger, db)
	router.GET("/search/:fragment", handleSearch(service, logger, validator))
}

func handleSearch(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{Fragment: c.Param("fragment")}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			writeError(c, http.StatusUnprocessableEntity, "failed to extract request parameters")
			return
		}
		request.setDefaults()

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		result, err := service.Search(request.Fragment, request.Skip, request.Limit)
		if err != nil {
			logger.Error("search failed", "fragment", request.Fragment, "err", err.Error())
			writeError(c, http.StatusInternalServerError, "Internal server error.")
			return
		}

		c.JSON(http.StatusOK, SearchResponse{
			Status:     statusOK,
			ActiveUser: c.GetString(ActiveUserKey),
			Users:      result.Users,
			Drops:      result.Drops,
			Recommendations: Recommendations{
				TopTags: result.TopTags,
			},
		})
	}
}
