// Package leasing provides the lease-to-own bounded context: simulated
// partner pre-qualification and lease creation.
package leasing

import (
	"pacmac_mobile_backend/internal/events"
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/internal/leasing/handler"
	"pacmac_mobile_backend/internal/leasing/service"
	"pacmac_mobile_backend/platform/config"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"
)

// Module is the leasing bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leasing module.
func NewModule(cfg config.LeasingConfig, src decision.Source, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(cfg, src, bus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leasing"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leasing routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/leasing/prequalify", m.handler.Prequalify)
	ctx.API.POST("/leasing", m.handler.StartLease)
}

var _ apphttp.Module = (*Module)(nil)
