package handler

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Result is what every handler returns, the wrapper takes care of writing it
type Result struct {
	Status int
	Body   any
}

// Error is the body of every non 2xx response
type Error struct {
	Message string `json:"message" example:"invalid id"`
}

// Func is a gin handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func to a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Status == 0 {
			r.Status = http.StatusOK
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
