package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, its title is derived from the content
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note content"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func Create(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		var body note.NewNote
		if err := ctx.ShouldBindJSON(&body); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid body"},
			}
		}

		created, ok := store.Create(ctx, body.Content)
		if !ok {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "content must not be empty"},
			}
		}
		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
