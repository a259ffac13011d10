package notification

import (
	"net/http"

	"pacmac_mobile_backend/internal/email"
	"pacmac_mobile_backend/platform/httpkit"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// SendEmailRequest is the body of POST /api/send-email.
type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Handler exposes the direct email endpoint. Unlike event-driven sends this
// one is the whole point of the request, so failures surface as 500s.
type Handler struct {
	sender email.Sender
	val    *validator.Validator
	log    *logger.Logger
}

// NewHandler creates a send-email handler.
func NewHandler(sender email.Sender, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{sender: sender, val: val, log: log}
}

// SendEmail handles POST /api/send-email.
func (h *Handler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed")
		return
	}

	if err := h.sender.SendCustomEmail(c.Request.Context(), req.To, req.Subject, req.HTML, req.Text); err != nil {
		h.log.NotificationEvent("email.custom", req.To, false, err.Error())
		httpkit.Error(c, http.StatusInternalServerError, "failed to send email")
		return
	}

	h.log.NotificationEvent("email.custom", req.To, true, "")
	httpkit.OK(c, gin.H{"success": true, "message": "Email sent successfully"})
}
