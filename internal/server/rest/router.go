package rest

import (
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the API under /api and the health probe at /healthz.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(h.requestID(), h.recovery())
	r.NoRoute(h.notFound)

	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.POST("/users", h.createUser)
	api.POST("/login", h.login)

	authed := api.Group("", h.requireAuth())

	authed.POST("/login/refresh", h.refresh)

	authed.GET("/folders", h.listFolders)
	authed.POST("/folders", h.createFolder)
	authed.GET("/folders/:id", h.getFolder)
	authed.PUT("/folders/:id", h.updateFolder)
	authed.DELETE("/folders/:id", h.deleteFolder)

	authed.GET("/tags", h.listTags)
	authed.POST("/tags", h.createTag)
	authed.GET("/tags/:id", h.getTag)
	authed.PUT("/tags/:id", h.updateTag)
	authed.DELETE("/tags/:id", h.deleteTag)

	authed.GET("/notes", h.listNotes)
	authed.POST("/notes", h.createNote)
	authed.GET("/notes/:id", h.getNote)
	authed.PUT("/notes/:id", h.updateNote)
	authed.DELETE("/notes/:id", h.deleteNote)

	authed.POST("/exports", h.createExport)

	return r
}
