package handler

import (
	"errors"
	"net/http"

	"pacmac_mobile_backend/internal/connectivity/service"
	"pacmac_mobile_backend/internal/connectivity/transport"
	"pacmac_mobile_backend/platform/httpkit"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for connectivity.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a connectivity handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Availability handles GET /api/connectivity/availability?zip=. Both the
// covered and uncovered answers are 200s; the payload carries the verdict.
func (h *Handler) Availability(c *gin.Context) {
	result := h.svc.CheckAvailability(c.Query("zip"))
	httpkit.OK(c, result)
}

// PlaceOrder handles POST /api/connectivity/orders.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req transport.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed")
		return
	}

	order, err := h.svc.PlaceOrder(c.Request.Context(), req.PlanID, service.Customer{
		Name:  req.Customer.Name,
		Email: req.Customer.Email,
		Phone: req.Customer.Phone,
		Zip:   req.Customer.Zip,
	})
	if errors.Is(err, service.ErrInvalidPlan) {
		// Picking a plan that does not exist is a routine storefront outcome,
		// not a server fault.
		httpkit.OK(c, gin.H{"success": false, "error": err.Error()})
		return
	}
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Record(c, "order", order)
}
