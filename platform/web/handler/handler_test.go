package handler

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapper(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/body", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusBadRequest, Body: Error{Message: "bad"}}
	}))
	engine.GET("/empty", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNoContent}
	}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/body", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test Wrapper: Should write the result status: %v", w.Code)
	}
	var e Error
	if err := json.NewDecoder(w.Body).Decode(&e); err != nil {
		t.Fatalf("Test Wrapper: Should write a json body: %v", err)
	}
	if e.Message != "bad" {
		t.Fatalf("Test Wrapper: Should write the result body: %v", e)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("Test Wrapper: Should write no body for a nil result body: %v %q", w.Code, w.Body.String())
	}
}
