package handler

import (
	"net/http"

	"pacmac_mobile_backend/internal/leasing/service"
	"pacmac_mobile_backend/internal/leasing/transport"
	"pacmac_mobile_backend/platform/httpkit"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request"

// Handler handles HTTP requests for leasing.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a leasing handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Prequalify handles POST /api/leasing/prequalify. Declines are successful
// HTTP exchanges: the partner answered, the answer was no.
func (h *Handler) Prequalify(c *gin.Context) {
	var req transport.PrequalifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed")
		return
	}

	dec := h.svc.Prequalify(applicantFromRequest(req))
	writeDecision(c, dec, nil)
}

// StartLease handles POST /api/leasing.
func (h *Handler) StartLease(c *gin.Context) {
	var req transport.StartLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
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

	record, dec := h.svc.StartLease(c.Request.Context(), items, applicantFromRequest(req.Customer))
	writeDecision(c, dec, record)
}

func writeDecision(c *gin.Context, dec service.Decision, record *service.Record) {
	if !dec.Approved() {
		httpkit.OK(c, gin.H{
			"success":     false,
			"status":      dec.Status,
			"reason":      dec.Reason,
			"suggestions": dec.Suggestions,
		})
		return
	}
	if record != nil {
		httpkit.Record(c, "lease", record)
		return
	}
	httpkit.Record(c, "decision", dec)
}

func applicantFromRequest(req transport.PrequalifyRequest) service.Applicant {
	return service.Applicant{
		Name:   req.Name,
		Phone:  req.Phone,
		Zip:    req.Zip,
		Email:  req.Email,
		Amount: req.Amount,
	}
}
