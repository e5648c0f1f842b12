package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/", nil)
	handler(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, map[string]string{"name": "teamswap"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp.Code != 0 || resp.Message != "ok" {
		t.Errorf("envelope = {%d %q}, want {0 \"ok\"}", resp.Code, resp.Message)
	}
	if resp.Data == nil {
		t.Error("data should be present")
	}
}

func TestCreated(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, map[string]string{"id": "p-1"})
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if resp := decode(t, w); resp.Code != 0 {
		t.Errorf("code = %d, want 0", resp.Code)
	}
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "invalid input") }, http.StatusBadRequest, "invalid input"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "token expired") }, http.StatusUnauthorized, "token expired"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "not the project creator") }, http.StatusForbidden, "not the project creator"},
		{"not found", func(c *gin.Context) { NotFound(c, "project not found") }, http.StatusNotFound, "project not found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "project has reached its maximum number of members") }, http.StatusConflict, "project has reached its maximum number of members"},
		{"server error", func(c *gin.Context) { ServerError(c, "internal error") }, http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.handler)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := decode(t, w)
			if resp.Code != tt.wantStatus {
				t.Errorf("envelope code = %d, want %d", resp.Code, tt.wantStatus)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestError_AppErrorKeepsItsStatus(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, NewConflict("already an active member of this project"))
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	if resp := decode(t, w); resp.Message != "already an active member of this project" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestError_GenericErrorBecomes500(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, errors.New("database gone"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if resp := decode(t, w); resp.Code != 500 {
		t.Errorf("envelope code = %d, want 500", resp.Code)
	}
}

func TestAppError_ErrorString(t *testing.T) {
	if got := NewNotFound("user not found").Error(); got != "user not found" {
		t.Errorf("Error() = %q, want %q", got, "user not found")
	}
}
