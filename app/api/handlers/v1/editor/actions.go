package editor

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/editor"
	"github.com/ribgsilva/notebook/platform/web/handler"
)

// Select godoc
// @Summary Select a note
// @Description Start editing a note, the draft is filled with its content
// @Tags Editor
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} editor.View
// @Failure 400 {object} handler.Error
// @Router /v1/editor/select/{id} [post]
func Select(controller *editor.Controller) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		id, ok := parseId(ctx)
		if !ok {
			return invalidId
		}
		controller.Select(id)
		return view(controller)
	}
}

// New godoc
// @Summary New note
// @Description Leave the selected note and start composing an empty draft
// @Tags Editor
// @Produce json
// @Success 200 {object} editor.View
// @Router /v1/editor/new [post]
func New(controller *editor.Controller) handler.Func {
	return func(_ *gin.Context) handler.Result {
		controller.New()
		return view(controller)
	}
}

// Commit godoc
// @Summary Create or save
// @Description Create a note from the draft when composing, save the draft over the selected note when editing
// @Tags Editor
// @Produce json
// @Success 200 {object} editor.View
// @Router /v1/editor/commit [post]
func Commit(controller *editor.Controller) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		controller.Commit(ctx)
		return view(controller)
	}
}

// Delete godoc
// @Summary Delete a note
// @Description Delete a note, deleting the selected one goes back to composing
// @Tags Editor
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} editor.View
// @Failure 400 {object} handler.Error
// @Router /v1/editor/notes/{id} [delete]
func Delete(controller *editor.Controller) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		id, ok := parseId(ctx)
		if !ok {
			return invalidId
		}
		controller.Delete(ctx, id)
		return view(controller)
	}
}
