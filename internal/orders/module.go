// Package orders records confirmed storefront purchases after payment has
// settled on the client side.
package orders

import (
	"pacmac_mobile_backend/internal/events"
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/internal/orders/handler"
	"pacmac_mobile_backend/internal/orders/service"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"
)

// Module is the storefront orders module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the orders module.
func NewModule(bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(bus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "orders"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts order routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/orders", m.handler.Create)
}

var _ apphttp.Module = (*Module)(nil)
