package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-for-middleware-testing")
}

func protectedRouter() *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired())
	router.GET("/me", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
		})
	})
	return router
}

func TestAuthRequired_Rejections(t *testing.T) {
	router := protectedRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bare scheme", "Bearer"},
		{"malformed token", "Bearer invalid.jwt.token"},
		{"wrong scheme with token", "Token abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthRequired_BearerToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "alice", 24)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := protectedRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

// EventSource cannot set request headers, so the token may arrive as a
// query parameter instead.
func TestAuthRequired_QueryToken(t *testing.T) {
	token, err := utils.GenerateToken("user-2", "bob", 24)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := protectedRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me?token="+token, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestContextAccessors(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if GetUserID(c) != "" || GetUsername(c) != "" {
		t.Error("accessors should return empty strings before auth ran")
	}

	c.Set(ContextUserID, "user-42")
	c.Set(ContextUsername, "carol")

	if got := GetUserID(c); got != "user-42" {
		t.Errorf("GetUserID = %q, want %q", got, "user-42")
	}
	if got := GetUsername(c); got != "carol" {
		t.Errorf("GetUsername = %q, want %q", got, "carol")
	}
}
