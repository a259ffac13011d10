// Package connectivity provides the wireless internet bounded context:
// coverage checks, the plan catalog, and plan orders.
package connectivity

import (
	"pacmac_mobile_backend/internal/connectivity/handler"
	"pacmac_mobile_backend/internal/connectivity/service"
	"pacmac_mobile_backend/internal/events"
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"
)

// Module is the connectivity bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the connectivity module.
func NewModule(src decision.Source, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(src, bus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "connectivity"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts connectivity routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/connectivity/availability", m.handler.Availability)
	ctx.API.POST("/connectivity/orders", m.handler.PlaceOrder)
}

var _ apphttp.Module = (*Module)(nil)
