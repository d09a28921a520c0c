package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listTags(c *gin.Context) {
	items, err := h.Tags.List(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getTag(c *gin.Context) {
	tag, err := h.Tags.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) createTag(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	name, _ := b.str("name")

	tag, err := h.Tags.Create(c.Request.Context(), userID(c), name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+tag.ID)
	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) updateTag(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	name, _ := b.str("name")

	tag, err := h.Tags.Update(c.Request.Context(), userID(c), c.Param("id"), name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) deleteTag(c *gin.Context) {
	if err := h.Tags.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
