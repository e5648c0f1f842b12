package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/internal/workflow"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing row", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"not the owner", workflow.ErrNotProjectOwner, http.StatusForbidden},
		{"not the applicant", workflow.ErrNotApplicant, http.StatusForbidden},
		{"outsider on swap", workflow.ErrNotSwapParty, http.StatusForbidden},
		{"bad decision", workflow.ErrInvalidDecision, http.StatusBadRequest},
		{"missing field", workflow.ErrMissingField, http.StatusBadRequest},
		{"email taken", services.ErrEmailTaken, http.StatusConflict},
		{"duplicate application", workflow.ErrAlreadyApplied, http.StatusConflict},
		{"project full", workflow.ErrProjectFull, http.StatusConflict},
		{"swap taken", workflow.ErrSwapTaken, http.StatusConflict},
		{"already reviewed", workflow.ErrAlreadyReviewed, http.StatusConflict},
		{"bad transition", workflow.ErrInvalidTransition, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/", nil)

			handleError(c, tt.err)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
