package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawandazzler/french-vocab-anki/internal/auth"
)

// GetUserID extracts the resolved user's ID from the Gin context.
// Returns 0 when the request carries no identity.
func GetUserID(c *gin.Context) uint {
	return auth.GetUserID(c)
}

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondNoUser sends the 400 response used by endpoints that require a
// resolved user identity.
func respondNoUser(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no user"})
}
