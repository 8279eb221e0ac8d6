package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/models"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestUser() *models.User {
	user := &models.User{LoginName: "alice"}
	user.ID = "0190a2b4-1111-7000-8000-000000000001"
	return user
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogging(), ErrorHandler())
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey), "login": c.GetString(LoginNameKey)})
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v\nbody: %s", err, w.Body.String())
	}
	return body
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()
	user := newTestUser()

	t.Run("valid_token", func(t *testing.T) {
		token, err := GenerateToken(user, testSecret, time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decode(t, w)
		if body["user_id"] != user.ID || body["login"] != "alice" {
			t.Errorf("unexpected identity %v", body)
		}
	})

	tests := []struct {
		name   string
		header func() string
	}{
		{"missing_header", func() string { return "" }},
		{"wrong_scheme", func() string { return "Basic abc" }},
		{"garbage_token", func() string { return "Bearer not.a.token" }},
		{"wrong_secret", func() string {
			token, _ := GenerateToken(user, "other-secret", time.Hour)
			return "Bearer " + token
		}},
		{"expired", func() string {
			token, _ := GenerateToken(user, testSecret, -time.Minute)
			return "Bearer " + token
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if h := tt.header(); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			body := decode(t, w)
			if body["success"] != false || body["code"] != "UNAUTHORIZED" || body["kind"] != "AuthenticationError" {
				t.Errorf("unexpected error body %v", body)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrBudgetNotFound, "no budget saved for 2026-03-01"))
	})
	r.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrTransactionFailed, errors.New("disk I/O error")))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	tests := []struct {
		path    string
		status  int
		code    string
		kind    string
		message string
	}{
		{"/app", http.StatusNotFound, "BUDGET_NOT_FOUND", "NotFoundError", "no budget saved for 2026-03-01"},
		{"/wrapped", http.StatusInternalServerError, "TRANSACTION_FAILED", "TransactionError", apperrors.ErrTransactionFailed.Message},
		{"/plain", http.StatusInternalServerError, "INTERNAL_ERROR", "InternalError", apperrors.ErrInternalServer.Message},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			body := decode(t, w)
			if body["success"] != false || body["code"] != tt.code || body["kind"] != tt.kind || body["message"] != tt.message {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestRequestLogging_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected generated request ID")
		}
	})

	t.Run("propagated", func(t *testing.T) {
		id := "0190a2b4-2222-7000-8000-000000000002"
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got != id {
			t.Errorf("expected %s, got %s", id, got)
		}
	})

	t.Run("malformed_replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got == "<script>" || got == "" {
			t.Errorf("expected fresh request ID, got %q", got)
		}
	})
}
