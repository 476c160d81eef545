package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note, deleting a missing note succeeds too
// @Tags Note
// @Param id path int true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		id, invalid := parseId(ctx)
		if invalid != nil {
			return *invalid
		}

		store.Delete(ctx, id)
		return handler.Result{Status: http.StatusNoContent}
	}
}
