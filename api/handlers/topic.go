package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
	"github.com/Utkarsh123xd/Student-Sphere/services/timeline"
	"github.com/Utkarsh123xd/Student-Sphere/validation"
)

type TopicRequest struct {
	Tag string `json:"tag" validate:"required,valid_query,max=100"`
}

type TopicResponse struct {
	Status     string              `json:"status"`
	ActiveUser string              `json:"activeUser"`
	Drops      []docstore.DropView `json:"tweets"`
}

func SetupTopic(router gin.IRouter, logger logger.Logger, db docstore.DB, validator *validation.Validator) {
	service := timeline.New(logger, db)
	router.GET("/topic/:tag", handleTopic(service, logger, validator))
}

func handleTopic(service *timeline.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := TopicRequest{Tag: c.Param("tag")}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate topic request", "err", err.Error())
			writeError(c, http.StatusNotAcceptable, err.Error())
			return
		}

		drops, err := service.Topic(request.Tag)
		if err != nil {
			logger.Error("topic lookup failed", "tag", request.Tag, "err", err.Error())
			writeError(c, http.StatusInternalServerError, "Internal server error.")
			return
		}

		c.JSON(http.StatusOK, TopicResponse{
			Status:     statusOK,
			ActiveUser: c.GetString(ActiveUserKey),
			Drops:      drops,
		})
	}
}
