package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook/platform/web/handler"
	"net/http"
	"strconv"
)

// parseId reads the :id path param, the result is set when it is not a valid id
func parseId(ctx *gin.Context) (int64, *handler.Result) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}
	return id, nil
}
