package notification

import (
	"pacmac_mobile_backend/internal/email"
	"pacmac_mobile_backend/internal/events"
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"
)

// Module wires the event listener and the direct send-email endpoint.
type Module struct {
	listener *Listener
	handler  *Handler
}

// NewModule creates the notification module and subscribes it to the bus.
func NewModule(sender email.Sender, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	listener := NewListener(sender, log)
	listener.Subscribe(bus)
	return &Module{
		listener: listener,
		handler:  NewHandler(sender, val, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notification"
}

// RegisterRoutes mounts notification routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/send-email", m.handler.SendEmail)
}

var _ apphttp.Module = (*Module)(nil)
