package payments

import (
	"net/http"
	"strings"

	"pacmac_mobile_backend/platform/httpkit"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// CreateIntentRequest is the payload for POST /api/create-payment-intent.
// Amount is in minor units (cents), as the provider requires.
type CreateIntentRequest struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"omitempty,len=3"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// Handler exposes the payment-intent endpoint.
type Handler struct {
	gateway Gateway
	val     *validator.Validator
}

// NewHandler creates a payments handler.
func NewHandler(gateway Gateway, val *validator.Validator) *Handler {
	return &Handler{gateway: gateway, val: val}
}

// CreateIntent handles POST /api/create-payment-intent.
// A provider failure is surfaced as a failed transaction (HTTP 500): this is
// the one collaborator whose errors are never swallowed.
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}

	intent, err := h.gateway.CreateIntent(c.Request.Context(), req.Amount, currency, req.Description)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	httpkit.OK(c, gin.H{
		"success":      true,
		"clientSecret": intent.ClientSecret,
		"id":           intent.ID,
	})
}
