package apihandlers

import (
	"context"
	"log/slog"
	"net/http"

	mw "github.com/e5hapiro/chevra-guest-form/pkg/apihelpers/middlewares"
	"github.com/e5hapiro/chevra-guest-form/pkg/formhandler"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	rg.POST("/form-submit",
		mw.HasValidAPIKey(h.apiKeys),
		mw.RequirePayload(),
		h.formSubmit)
}

// FormSubmitReq is the payload posted by the spreadsheet's form submit trigger.
type FormSubmitReq struct {
	Values    []string `json:"values"`
	SheetName string   `json:"sheetName"`
	Row       int      `json:"row"`
}

func (h *HttpEndpoints) formSubmit(c *gin.Context) {
	var req FormSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Row < 1 {
		slog.Error("invalid row in form submit event", slog.Int("row", req.Row))
		c.JSON(http.StatusBadRequest, gin.H{"error": "row must be 1 or greater"})
		return
	}

	event := formhandler.NewSubmissionEvent(req.Values, formhandler.RowRef{
		SheetName: req.SheetName,
		Row:       req.Row,
	}, h.sheetConfig)

	// row writes must complete even if the caller disconnects
	outcome := h.processor.ProcessFormSubmit(context.WithoutCancel(c.Request.Context()), event)

	slog.Info("form submit processed", slog.Int("row", req.Row), slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}
