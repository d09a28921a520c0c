package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listNotes(c *gin.Context) {
	items, err := h.Notes.List(c.Request.Context(), userID(c),
		c.Query("searchTerm"), c.Query("folderId"), c.Query("tagId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getNote(c *gin.Context) {
	note, err := h.Notes.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Handler) createNote(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	note, err := h.Notes.Create(c.Request.Context(), userID(c), b.noteInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+note.ID)
	c.JSON(http.StatusCreated, note)
}

func (h *Handler) updateNote(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	note, err := h.Notes.Update(c.Request.Context(), userID(c), c.Param("id"), b.noteInput())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Handler) deleteNote(c *gin.Context) {
	if err := h.Notes.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
