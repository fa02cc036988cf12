package apihandlers

import (
	"net/http"

	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type MailSender interface {
	SendMail(to []string, subject string, textContent string, overrides *messagingTypes.HeaderOverrides) error
}

type HttpEndpoints struct {
	apiKeys             []string
	highPrioSmtpClients MailSender
	lowPrioSmtpClients  MailSender
}

func NewHTTPHandler(
	apiKeys []string,
	highPrioSmtpClients MailSender,
	lowPrioSmtpClients MailSender,
) *HttpEndpoints {
	return &HttpEndpoints{
		apiKeys:             apiKeys,
		highPrioSmtpClients: highPrioSmtpClients,
		lowPrioSmtpClients:  lowPrioSmtpClients,
	}
}
