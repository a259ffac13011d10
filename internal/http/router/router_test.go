package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/platform/config"
	"pacmac_mobile_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

func testApp(modules ...apphttp.Module) *apphttp.App {
	gin.SetMode(gin.TestMode)
	return &apphttp.App{
		Config: &config.Config{
			Env:                "development",
			Version:            "1.0.0",
			CORSAllowAll:       true,
			RateLimitPerSecond: 100,
			RateLimitBurst:     100,
		},
		Logger:  logger.New("development"),
		Modules: modules,
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine := New(testApp())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Version   string `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("version = %q", resp.Version)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", resp.Timestamp, err)
	}
}

type stubModule struct{ registered bool }

func (m *stubModule) Name() string { return "stub" }

func (m *stubModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.registered = true
	ctx.API.GET("/stub", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func TestModuleRoutesRegistered(t *testing.T) {
	mod := &stubModule{}
	engine := New(testApp(mod))

	if !mod.registered {
		t.Fatal("module RegisterRoutes not called")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/stub", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	engine := New(testApp())

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
