package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
)

type tokenResponse struct {
	AuthToken string `json:"authToken"`
}

func (h *Handler) login(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	username, okUser := b.str("username")
	password, okPass := b.str("password")
	if !okUser || !okPass || username == "" || password == "" {
		h.writeError(c, common.BadRequest())
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	token, err := h.Users.IssueToken(user)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AuthToken: token})
}

// refresh re-issues a token for the already authenticated caller.
func (h *Handler) refresh(c *gin.Context) {
	token, err := h.Users.RefreshToken(principal(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AuthToken: token})
}
