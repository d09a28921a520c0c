package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// validationResponse is the body of signup errors that name a field.
type validationResponse struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// writeError aborts the request with the status carried by a domain error.
// Anything else is logged and reported as a bare 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		if appErr.Location != "" {
			c.AbortWithStatusJSON(appErr.Status, validationResponse{
				Code:     appErr.Status,
				Reason:   "ValidationError",
				Message:  appErr.Message,
				Location: appErr.Location,
			})
			return
		}
		c.AbortWithStatusJSON(appErr.Status, errorResponse{Status: appErr.Status, Message: appErr.Message})
		return
	}

	h.Logger.Error(c.Request.Context(), "request failed",
		"request_id", RequestIDFromContext(c),
		"method", c.Request.Method,
		"route", c.FullPath(),
		"error", err,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Status:  http.StatusInternalServerError,
		Message: "Internal Server Error",
	})
}

func (h *Handler) notFound(c *gin.Context) {
	h.writeError(c, common.NotFound())
}
