package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/auth"
)

const (
	requestIDContextKey = "request_id"
	principalContextKey = "user"
)

// RequestIDFromContext returns a request ID or an empty string when unavailable.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}

// requestID propagates or assigns X-Request-ID and logs every request with it.
func (h *Handler) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()
		requestID := normalizeRequestID(c.GetHeader(common.RequestIDHeaderName))
		if requestID == "" {
			requestID = generateRequestID()
		}

		c.Set(requestIDContextKey, requestID)
		c.Writer.Header().Set(common.RequestIDHeaderName, requestID)

		c.Next()

		h.Logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", float64(time.Since(startedAt).Microseconds())/1000.0,
			"client_ip", c.ClientIP(),
		)
	}
}

func normalizeRequestID(raw string) string {
	candidate := strings.TrimSpace(raw)
	if len(candidate) > 128 {
		candidate = candidate[:128]
	}
	return candidate
}

func generateRequestID() string {
	id, err := common.MakeRandHexString(16)
	if err != nil {
		return time.Now().UTC().Format("20060102150405.000000000")
	}
	return id
}

// recovery turns a panic into the generic 500 body.
func (h *Handler) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		h.Logger.Error(c.Request.Context(), "panic recovered",
			"request_id", RequestIDFromContext(c),
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Internal Server Error",
		})
	})
}

// requireAuth rejects requests without a valid bearer token before any
// handler logic runs, and stores the principal for the handlers.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)

		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			h.writeError(c, common.Unauthenticated())
			return
		}

		p, err := h.Users.ParseToken(token)
		if err != nil {
			h.writeError(c, common.Unauthenticated())
			return
		}

		c.Set(principalContextKey, p)
		c.Next()
	}
}

func principal(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// userID is only called behind requireAuth.
func userID(c *gin.Context) string {
	if p := principal(c); p != nil {
		return p.ID
	}
	return ""
}
