package payments

import (
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/platform/validator"
)

// Module wires the payment-intent HTTP route.
type Module struct {
	handler *Handler
}

// NewModule creates the payments module around a configured gateway.
func NewModule(gateway Gateway, val *validator.Validator) *Module {
	return &Module{handler: NewHandler(gateway, val)}
}

func (m *Module) Name() string {
	return "payments"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/create-payment-intent", m.handler.CreateIntent)
}

var _ apphttp.Module = (*Module)(nil)
