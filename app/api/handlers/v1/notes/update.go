package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
	"strings"
)

// Update godoc
// @Summary Update a note
// @Description Replace the content of a note, keeping its id and creation time
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.NewNote true "Note content"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [put]
func Update(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		id, invalid := parseId(ctx)
		if invalid != nil {
			return *invalid
		}

		var body note.NewNote
		if err := ctx.ShouldBindJSON(&body); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid body"},
			}
		}
		if strings.TrimSpace(body.Content) == "" {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "content must not be empty"},
			}
		}

		updated, ok := store.Update(ctx, id, body.Content)
		if !ok {
			return handler.Result{
				Status: http.StatusNotFound,
				Body:   handler.Error{Message: "note not found"},
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   updated,
		}
	}
}
