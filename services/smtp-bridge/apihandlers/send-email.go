package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/e5hapiro/chevra-guest-form/pkg/apihelpers/middlewares"
	emailsending "github.com/e5hapiro/chevra-guest-form/pkg/messaging/email-sending"
	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-email",
		mw.HasValidAPIKey(h.apiKeys),
		mw.RequirePayload(),
		h.sendEmail)
}

func (h *HttpEndpoints) sendEmail(c *gin.Context) {
	var req emailsending.SendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.To) < 1 || req.To[0] == "" {
		slog.Error("missing 'to' field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'to' field"})
		return
	}

	clients := h.lowPrioSmtpClients
	if req.HighPrio {
		clients = h.highPrioSmtpClients
	}

	if err := clients.SendMail(req.To, req.Subject, req.Content, req.HeaderOverrides); err != nil {
		slog.Error("failed to send email", slog.String("to", utils.BlurEmailAddress(req.To[0])), slog.Bool("highPrio", req.HighPrio), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
		return
	}

	slog.Debug("email sent", slog.String("to", utils.BlurEmailAddress(req.To[0])), slog.Bool("highPrio", req.HighPrio))
	c.JSON(http.StatusOK, gin.H{"message": "email sent"})
}
