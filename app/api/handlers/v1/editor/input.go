package editor

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/editor"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
)

type ContentInput struct {
	Content string `json:"content" example:"Buy milk"`
}

type QueryInput struct {
	Query string `json:"query" example:"milk"`
}

var invalidBody = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid body"},
}

// Content godoc
// @Summary Type into the editor
// @Description Replace the editor draft
// @Tags Editor
// @Accept json
// @Produce json
// @Param input body editor.ContentInput true "Draft"
// @Success 200 {object} editor.View
// @Failure 400 {object} handler.Error
// @Router /v1/editor/content [put]
func Content(controller *editor.Controller) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		var in ContentInput
		if err := ctx.ShouldBindJSON(&in); err != nil {
			return invalidBody
		}
		controller.SetContent(in.Content)
		return view(controller)
	}
}

// Query godoc
// @Summary Type into the search box
// @Description Replace the live search filter of the note list
// @Tags Editor
// @Accept json
// @Produce json
// @Param input body editor.QueryInput true "Search term"
// @Success 200 {object} editor.View
// @Failure 400 {object} handler.Error
// @Router /v1/editor/query [put]
func Query(controller *editor.Controller) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		var in QueryInput
		if err := ctx.ShouldBindJSON(&in); err != nil {
			return invalidBody
		}
		controller.SetQuery(in.Query)
		return view(controller)
	}
}
