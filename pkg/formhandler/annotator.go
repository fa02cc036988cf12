package formhandler

import (
	"context"
	"log/slog"

	"github.com/e5hapiro/chevra-guest-form/pkg/gsheets"
)

type SheetWriter interface {
	SetCellValue(ctx context.Context, ref RowRef, column int, value any) error
}

// Annotator writes per-submission metadata into the triggering row. Failures
// are logged and reported as false; they never stop the pipeline.
type Annotator struct {
	writer SheetWriter
}

func NewAnnotator(writer SheetWriter) *Annotator {
	return &Annotator{writer: writer}
}

func (a *Annotator) AddToken(ctx context.Context, event SubmissionEvent) bool {
	if event.TokenColumn < 1 {
		slog.Error("token column not set", slog.Int("row", event.Row.Row))
		return false
	}
	if event.UUID == "" {
		slog.Error("no token generated for submission", slog.Int("row", event.Row.Row))
		return false
	}

	if err := a.writer.SetCellValue(ctx, event.Row, event.TokenColumn, event.UUID); err != nil {
		slog.Error("error adding token", slog.Int("row", event.Row.Row), slog.String("error", err.Error()))
		return false
	}
	slog.Debug("token added", slog.Int("row", event.Row.Row), slog.Int("column", event.TokenColumn))
	return true
}

func (a *Annotator) AddApprovalCheckbox(ctx context.Context, event SubmissionEvent, approved bool) bool {
	if event.ApprovalColumn < 1 {
		slog.Error("approval column not set", slog.Int("row", event.Row.Row))
		return false
	}

	if err := a.writer.SetCellValue(ctx, event.Row, event.ApprovalColumn, approved); err != nil {
		slog.Error("error adding approval checkbox", slog.Int("row", event.Row.Row), slog.String("error", err.Error()))
		return false
	}
	slog.Debug("approval checkbox set", slog.Int("row", event.Row.Row), slog.Bool("approved", approved))
	return true
}

// SheetsWriter adapts the Google Sheets client to SheetWriter.
type SheetsWriter struct {
	Client *gsheets.Client
}

func (w SheetsWriter) SetCellValue(ctx context.Context, ref RowRef, column int, value any) error {
	return w.Client.SetCellValue(ctx, ref.SpreadsheetID, ref.SheetName, ref.Row, column, value)
}
