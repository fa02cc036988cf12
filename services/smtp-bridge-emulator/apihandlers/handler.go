package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	apiKeys   []string
	emailsDir string
	from      string
}

func NewHTTPHandler(apiKeys []string, emailsDir string, from string) *HttpEndpoints {
	return &HttpEndpoints{
		apiKeys:   apiKeys,
		emailsDir: emailsDir,
		from:      from,
	}
}
