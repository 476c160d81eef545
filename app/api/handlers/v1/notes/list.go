package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
	"slices"
)

// List godoc
// @Summary List notes
// @Description List notes newest first, optionally keeping only those whose title or content contains the search term
// @Tags Note
// @Produce json
// @Param search query string false "Case insensitive search term"
// @Success 200 {array} note.Note
// @Router /v1/notes [get]
func List(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		found := slices.Collect(store.Search(ctx.Query("search")))
		if found == nil {
			found = []note.Note{}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   found,
		}
	}
}
