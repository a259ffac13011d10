// Package tradein provides the trade-in bounded context: catalog pricing,
// randomized quoting, and submission records.
package tradein

import (
	"pacmac_mobile_backend/internal/events"
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/internal/tradein/handler"
	"pacmac_mobile_backend/internal/tradein/service"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"
)

// Module is the trade-in bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the trade-in module.
func NewModule(src decision.Source, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(src, bus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tradein"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts trade-in routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/trade-in/quote", m.handler.Quote)
	ctx.API.POST("/trade-in", m.handler.Submit)
}

var _ apphttp.Module = (*Module)(nil)
