package handler

import (
	"net/http"

	"pacmac_mobile_backend/internal/orders/service"
	"pacmac_mobile_backend/internal/orders/transport"
	"pacmac_mobile_backend/platform/httpkit"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for storefront orders.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates an orders handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Create handles POST /api/orders.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed")
		return
	}

	items := make([]service.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.Item{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}

	order := h.svc.Create(c.Request.Context(), items, service.Customer{
		Name:  req.Customer.Name,
		Email: req.Customer.Email,
		Phone: req.Customer.Phone,
	}, req.Total, req.PaymentIntentID)

	httpkit.Record(c, "order", order)
}
