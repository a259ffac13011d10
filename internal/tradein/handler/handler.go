package handler

import (
	"net/http"
	"time"

	"pacmac_mobile_backend/internal/tradein/service"
	"pacmac_mobile_backend/internal/tradein/transport"
	"pacmac_mobile_backend/platform/httpkit"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for trade-ins.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a trade-in handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Quote handles POST /api/trade-in/quote.
func (h *Handler) Quote(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	quote := h.svc.Quote(req.Device, service.Condition(req.Condition))
	httpkit.Record(c, "quote", quote)
}

// Submit handles POST /api/trade-in.
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	record := h.svc.Submit(c.Request.Context(), quoteFromRequest(req.Quote), service.Customer{
		Name:  req.Customer.Name,
		Email: req.Customer.Email,
		Phone: req.Customer.Phone,
	})
	httpkit.Record(c, "tradeIn", record)
}

func quoteFromRequest(q transport.SubmittedQuote) service.Quote {
	currency := q.Currency
	if currency == "" {
		currency = "USD"
	}
	validUntil, err := time.Parse(time.RFC3339, q.ValidUntil)
	if err != nil {
		validUntil = time.Time{}
	}
	return service.Quote{
		Device:     q.Device,
		Condition:  service.Condition(q.Condition),
		BaseAmount: q.BaseAmount,
		Amount:     q.Amount,
		Currency:   currency,
		Reference:  q.Reference,
		ValidUntil: validUntil,
	}
}
