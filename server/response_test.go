package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/peoplekit/authkit/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/x", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestRespondOK_Envelope(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		RespondOK(c, gin.H{"id": "u1"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("success envelope must have success=true")
	}
	if resp.Timestamp == "" {
		t.Error("timestamp must be set")
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["id"] != "u1" {
		t.Errorf("unexpected data: %v", resp.Data)
	}
}

func TestRespondWithError_AppError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		RespondWithError(c, apperrors.TokenExpired())
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var resp apperrors.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != apperrors.ErrCodeTokenExpired {
		t.Errorf("code = %s", resp.Code)
	}
	if resp.Path != "/x" {
		t.Errorf("path = %s", resp.Path)
	}
}

func TestRespondWithError_UnknownError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		RespondWithError(c, errors.New("driver: bad connection"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := w.Body.String(); len(got) > 0 && json.Valid(w.Body.Bytes()) {
		var resp apperrors.Response
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Code != apperrors.ErrCodeInternal {
			t.Errorf("code = %s, want INTERNAL_ERROR", resp.Code)
		}
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 8080 {
		t.Errorf("port = %d", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}

	bad := Config{Port: 70000}
	if err := bad.Validate(); err == nil {
		t.Error("out-of-range port must fail validation")
	}
}
