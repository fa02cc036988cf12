package apihandlers

import (
	"context"
	"net/http"

	"github.com/e5hapiro/chevra-guest-form/pkg/formhandler"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type FormSubmitProcessor interface {
	ProcessFormSubmit(ctx context.Context, event formhandler.SubmissionEvent) formhandler.Outcome
}

type HttpEndpoints struct {
	apiKeys     []string
	processor   FormSubmitProcessor
	sheetConfig formhandler.SheetConfig
}

func NewHTTPHandler(
	apiKeys []string,
	processor FormSubmitProcessor,
	sheetConfig formhandler.SheetConfig,
) *HttpEndpoints {
	return &HttpEndpoints{
		apiKeys:     apiKeys,
		processor:   processor,
		sheetConfig: sheetConfig,
	}
}
