package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pacmac_mobile_backend/internal/connectivity/service"
	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func newTestRouter(src decision.Source) (*gin.Engine, *events.InMemoryBus) {
	gin.SetMode(gin.TestMode)
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	h := New(service.New(src, bus, log), validator.New())

	engine := gin.New()
	engine.GET("/api/connectivity/availability", h.Availability)
	engine.POST("/api/connectivity/orders", h.PlaceOrder)
	return engine, bus
}

func TestAvailabilityEndpoint(t *testing.T) {
	engine, _ := newTestRouter(decision.NewSequence(0.9))

	req := httptest.NewRequest(http.MethodGet, "/api/connectivity/availability?zip=68102", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp service.Availability
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || len(resp.Plans) != 3 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestAvailabilityBadZipStillHTTP200(t *testing.T) {
	engine, _ := newTestRouter(decision.NewSequence(0.9))

	req := httptest.NewRequest(http.MethodGet, "/api/connectivity/availability?zip=banana", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp service.Availability
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.OK || resp.Message != "Invalid ZIP code format" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestPlaceOrderInvalidPlanIsBusinessDecline(t *testing.T) {
	engine, _ := newTestRouter(decision.NewSequence(0.9))

	body := `{"planId": "nomad-yacht", "customer": {"email": "dana@example.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/connectivity/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: the partner answered, the answer was no", w.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success || resp.Error != "Invalid plan selected" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestPlaceOrderSuccessEnvelope(t *testing.T) {
	engine, _ := newTestRouter(decision.NewSequence(0.9))

	body := `{"planId": "nomad-rv", "customer": {"name": "Dana", "email": "dana@example.com", "zip": "68102"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/connectivity/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool           `json:"success"`
		Order   *service.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Order == nil {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Order.Plan.ID != "nomad-rv" {
		t.Errorf("plan = %q", resp.Order.Plan.ID)
	}
	if !strings.HasPrefix(resp.Order.OrderID, "NOM-") {
		t.Errorf("orderId = %q", resp.Order.OrderID)
	}
}
