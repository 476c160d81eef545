package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/app/api/handlers/v1/editor"
	"github.com/ribgsilva/notebook/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notebook/app/api/handlers/v1/notes"
	ed "github.com/ribgsilva/notebook/business/v1/editor"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, store *note.Store, controller *ed.Controller) {
	r.GET("/v1/notes", handler.Wrapper(notes.List(store)))
	r.POST("/v1/notes", handler.Wrapper(notes.Create(store)))
	r.GET("/v1/notes/:id", handler.Wrapper(notes.Get(store)))
	r.PUT("/v1/notes/:id", handler.Wrapper(notes.Update(store)))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete(store)))

	r.GET("/v1/editor", handler.Wrapper(editor.Get(controller)))
	r.PUT("/v1/editor/content", handler.Wrapper(editor.Content(controller)))
	r.PUT("/v1/editor/query", handler.Wrapper(editor.Query(controller)))
	r.POST("/v1/editor/select/:id", handler.Wrapper(editor.Select(controller)))
	r.POST("/v1/editor/new", handler.Wrapper(editor.New(controller)))
	r.POST("/v1/editor/commit", handler.Wrapper(editor.Commit(controller)))
	r.DELETE("/v1/editor/notes/:id", handler.Wrapper(editor.Delete(controller)))
}
