package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.POST("/login", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return router
}

func hit(router *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", nil)
	req.RemoteAddr = ip + ":54321"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	router := limitedRouter(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		if code := hit(router, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d within burst: got %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := hit(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("request past burst: got %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimiter_BucketsAreIndependentPerIP(t *testing.T) {
	router := limitedRouter(NewRateLimiter(1, 1))

	if code := hit(router, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first IP: got %d, want %d", code, http.StatusOK)
	}
	if code := hit(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("first IP exhausted: got %d, want %d", code, http.StatusTooManyRequests)
	}

	if code := hit(router, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("second IP has its own bucket: got %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiter_RejectionBody(t *testing.T) {
	router := limitedRouter(NewRateLimiter(1, 1))
	hit(router, "10.0.0.3")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.0.0.3:54321"
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if body := w.Body.String(); body == "" {
		t.Error("rejection should carry a JSON body")
	}
}
