package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listFolders(c *gin.Context) {
	items, err := h.Folders.List(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getFolder(c *gin.Context) {
	folder, err := h.Folders.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

func (h *Handler) createFolder(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	name, _ := b.str("name")

	folder, err := h.Folders.Create(c.Request.Context(), userID(c), name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+folder.ID)
	c.JSON(http.StatusCreated, folder)
}

func (h *Handler) updateFolder(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	name, _ := b.str("name")

	folder, err := h.Folders.Update(c.Request.Context(), userID(c), c.Param("id"), name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

func (h *Handler) deleteFolder(c *gin.Context) {
	if err := h.Folders.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
