package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Utkarsh123xd/Student-Sphere/api/handlers"
	"github.com/Utkarsh123xd/Student-Sphere/auth"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

const headerAccessToken = "x-access-token"

func loggingMiddleware(logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("request", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	}
}

// authMiddleware validates the x-access-token header and stores the
// authenticated username in the context. Requests with a missing or
// invalid token are rejected before any handler or store access runs.
func authMiddleware(validator *auth.Validator, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validator.Validate(c.GetHeader(headerAccessToken))
		if err != nil {
			logger.Warn("unauthorized request", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or missing access token.",
			})
			return
		}

		c.Set(handlers.ActiveUserKey, claims.Username)
		c.Next()
	}
}

// _CORSMiddleware starts with _ so that it is not imported outside of the server package.
func _CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Authentication, accept, origin, Cache-Control, X-Requested-With, x-access-token") // nolint:lll
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)

			return
		}

		c.Next()
	}
}
