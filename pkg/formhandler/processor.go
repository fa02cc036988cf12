package formhandler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/e5hapiro/chevra-guest-form/pkg/submission"
	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
)

type Notifier interface {
	SendFormConfirmationNotification(r submission.SubmissionRecord, preApproved bool) bool
}

// Processor runs the form submission pipeline. Runs are serialized so that
// two events never touch the spreadsheet at the same time.
type Processor struct {
	mu        sync.Mutex
	annotator *Annotator
	notifier  Notifier
	debug     bool
}

func NewProcessor(annotator *Annotator, notifier Notifier, debug bool) *Processor {
	return &Processor{
		annotator: annotator,
		notifier:  notifier,
		debug:     debug,
	}
}

// ProcessFormSubmit handles one submission event start to finish. Unexpected
// failures are recovered and logged together with the record being processed.
func (p *Processor) ProcessFormSubmit(ctx context.Context, event SubmissionEvent) (outcome Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var record submission.SubmissionRecord
	defer func() {
		if r := recover(); r != nil {
			slog.Error("error processing form submission", slog.Int("row", event.Row.Row), slog.String("error", fmt.Sprint(r)))
			utils.LogQCVars(p.debug, "processFormSubmit failed", record.Snapshot())
			outcome = OutcomeFailed
		}
	}()

	record = submission.ExtractRecord(event.Values)
	utils.LogQCVars(p.debug, "processFormSubmit extracted", record.Snapshot())

	if submission.IsFormUpdated(record) {
		slog.Info("form was updated, skipping", slog.Int("row", event.Row.Row))
		return OutcomeSkippedUpdate
	}

	p.annotator.AddToken(ctx, event)

	preApproved := submission.PreApproveGuest(record, p.debug)
	p.annotator.AddApprovalCheckbox(ctx, event, preApproved)

	notified := p.notifier.SendFormConfirmationNotification(record, preApproved)

	utils.LogQCVars(p.debug, "processFormSubmit done", map[string]any{
		"row":         event.Row.Row,
		"token":       event.UUID,
		"preApproved": preApproved,
		"notified":    notified,
	})
	return OutcomeDone
}
