package handlers

import (
	"github.com/gin-gonic/gin"
)

// Every response body carries a "status" discriminator: "ok" plus
// route-specific fields on success, "error" plus a message otherwise.
// Handlers declare their success shapes as typed structs; absence of a
// field is an explicit omitempty, never an accidental undefined.

const (
	statusOK    = "ok"
	statusError = "error"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, statusCode int, message string) {
	c.Abort()
	c.JSON(statusCode, errorResponse{
		Status:  statusError,
		Message: message,
	})
}
