package editor

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/business/v1/editor"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
	"strconv"
)

// Every editor action answers with the resulting view, failed actions simply leave it unchanged.

func view(controller *editor.Controller) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   controller.View(),
	}
}

func parseId(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

var invalidId = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

// Get godoc
// @Summary Editor view
// @Description Current editor mode, draft, search query and filtered note list
// @Tags Editor
// @Produce json
// @Success 200 {object} editor.View
// @Router /v1/editor [get]
func Get(controller *editor.Controller) handler.Func {
	return func(_ *gin.Context) handler.Result {
		return view(controller)
	}
}
