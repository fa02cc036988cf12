package formhandler

import (
	"context"
	"testing"

	"github.com/e5hapiro/chevra-guest-form/pkg/submission"
)

type notification struct {
	record      submission.SubmissionRecord
	preApproved bool
}

type mockNotifier struct {
	panicWith any
	sent      []notification
}

func (m *mockNotifier) SendFormConfirmationNotification(r submission.SubmissionRecord, preApproved bool) bool {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	m.sent = append(m.sent, notification{record: r, preApproved: preApproved})
	return true
}

var debugFixtureValues = []string{
	"11/14/2025 16:19:17", "eshapiro@gmail.com", "Dalia", "Shapiro", "6391 Swallow Ln",
	"Boulder", "CO", "80303", "303 618 5661", "Yes", "Alice 1", "Family", "Yes", "",
	"Yes", "", "Member of local synagogue", "CBS", "Yes", "Agree", "",
}

func eventWithValues(values []string) SubmissionEvent {
	event := testEvent()
	event.Values = values
	return event
}

func TestProcessFormSubmit(t *testing.T) {
	t.Run("debug fixture is pre-approved and notified", func(t *testing.T) {
		w := &mockSheetWriter{}
		n := &mockNotifier{}
		p := NewProcessor(NewAnnotator(w), n, true)

		outcome := p.ProcessFormSubmit(context.Background(), eventWithValues(debugFixtureValues))
		if outcome != OutcomeDone {
			t.Fatalf("unexpected outcome: %s", outcome)
		}
		if len(w.writes) != 2 {
			t.Fatalf("expected token and approval writes, got %+v", w.writes)
		}
		if w.writes[0].column != DEFAULT_TOKEN_COLUMN || w.writes[1].column != DEFAULT_APPROVAL_COLUMN {
			t.Errorf("token must be written before approval: %+v", w.writes)
		}
		if w.writes[1].value != true {
			t.Errorf("expected approval true, got %v", w.writes[1].value)
		}
		if len(n.sent) != 1 || !n.sent[0].preApproved || n.sent[0].record.Email != "eshapiro@gmail.com" {
			t.Errorf("unexpected notifications: %+v", n.sent)
		}
	})

	t.Run("updated row is skipped", func(t *testing.T) {
		w := &mockSheetWriter{}
		n := &mockNotifier{}
		p := NewProcessor(NewAnnotator(w), n, false)

		outcome := p.ProcessFormSubmit(context.Background(), eventWithValues([]string{"11/14/2025", ""}))
		if outcome != OutcomeSkippedUpdate {
			t.Errorf("unexpected outcome: %s", outcome)
		}
		if len(w.writes) != 0 || len(n.sent) != 0 {
			t.Errorf("no side effects expected: %+v %+v", w.writes, n.sent)
		}
	})

	t.Run("incomplete answers are not approved", func(t *testing.T) {
		w := &mockSheetWriter{}
		n := &mockNotifier{}
		p := NewProcessor(NewAnnotator(w), n, false)

		values := append([]string{}, debugFixtureValues...)
		values[12] = "No"
		outcome := p.ProcessFormSubmit(context.Background(), eventWithValues(values))
		if outcome != OutcomeDone {
			t.Fatalf("unexpected outcome: %s", outcome)
		}
		if len(w.writes) != 2 || w.writes[1].value != false {
			t.Errorf("expected approval false: %+v", w.writes)
		}
		if len(n.sent) != 1 || n.sent[0].preApproved {
			t.Errorf("expected follow-up notification: %+v", n.sent)
		}
	})

	t.Run("write failures do not stop the pipeline", func(t *testing.T) {
		w := &mockSheetWriter{err: context.DeadlineExceeded}
		n := &mockNotifier{}
		p := NewProcessor(NewAnnotator(w), n, false)

		if outcome := p.ProcessFormSubmit(context.Background(), eventWithValues(debugFixtureValues)); outcome != OutcomeDone {
			t.Errorf("unexpected outcome: %s", outcome)
		}
		if len(n.sent) != 1 {
			t.Errorf("notification expected despite write errors")
		}
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := &mockSheetWriter{}
		n := &mockNotifier{panicWith: "mail bridge exploded"}
		p := NewProcessor(NewAnnotator(w), n, true)

		if outcome := p.ProcessFormSubmit(context.Background(), eventWithValues(debugFixtureValues)); outcome != OutcomeFailed {
			t.Errorf("unexpected outcome: %s", outcome)
		}
		if len(w.writes) != 2 {
			t.Errorf("partial writes are not rolled back: %+v", w.writes)
		}

		// processor must stay usable after a recovered failure
		n.panicWith = nil
		if outcome := p.ProcessFormSubmit(context.Background(), eventWithValues(debugFixtureValues)); outcome != OutcomeDone {
			t.Errorf("unexpected outcome after recovery: %s", outcome)
		}
	})
}
