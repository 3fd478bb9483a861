package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Utkarsh123xd/Student-Sphere/api/handlers"
	"github.com/Utkarsh123xd/Student-Sphere/auth"
	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
	"github.com/Utkarsh123xd/Student-Sphere/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, db docstore.DB, authValidator *auth.Validator, validator *validation.Validator) {
	router.GET("/health", health())

	// Everything under /api requires a valid access token.
	authed := router.Group("/api", authMiddleware(authValidator, logger))

	handlers.SetupSearch(authed, logger, db, validator)
	handlers.SetupProfile(authed, logger, db, validator)
	handlers.SetupTopic(authed, logger, db, validator)
}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())

	return router
}
