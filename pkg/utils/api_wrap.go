package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgEnterTwoLocations = "Te rog introdu cel puțin 2 locații."
	MsgTooFewLocations   = "Cel puțin 2 locații necesare."
	MsgDatabaseError     = "Eroare la salvarea istoricului."
)

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RouteErrorMessage is the single entry shown in place of the route list.
func RouteErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTooFewLocations):
		return MsgTooFewLocations
	case errors.Is(err, ErrDatabaseError):
		return MsgDatabaseError
	default:
		return err.Error()
	}
}

// HandleServiceError aborts the request for failures the page cannot render around.
func HandleServiceError(c *gin.Context, err error) {
	log.Printf("[%s] %s %s failed: %v", traceID(c), c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Internal server error")
	c.Abort()
}

func RespondOK(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
