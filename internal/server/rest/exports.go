package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createExport(c *gin.Context) {
	res, err := h.Exports.Export(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", res.URL)
	c.JSON(http.StatusCreated, res)
}
