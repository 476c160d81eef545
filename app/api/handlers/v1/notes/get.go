package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		id, invalid := parseId(ctx)
		if invalid != nil {
			return *invalid
		}

		get, ok := store.Find(id)
		if !ok {
			return handler.Result{
				Status: http.StatusNotFound,
				Body:   handler.Error{Message: "note not found"},
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   get,
		}
	}
}
