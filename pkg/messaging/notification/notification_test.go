package notification

import (
	"errors"
	"strings"
	"testing"

	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"github.com/e5hapiro/chevra-guest-form/pkg/submission"
)

type mockSender struct {
	err  error
	sent []*messagingTypes.OutgoingEmail
}

func (m *mockSender) SendOutgoingEmail(email *messagingTypes.OutgoingEmail) error {
	m.sent = append(m.sent, email)
	return m.err
}

type mockRecorder struct {
	err        error
	instanceID string
	recorded   []messagingTypes.OutgoingEmail
}

func (m *mockRecorder) AddToSentEmails(instanceID string, email messagingTypes.OutgoingEmail) (messagingTypes.OutgoingEmail, error) {
	m.instanceID = instanceID
	m.recorded = append(m.recorded, email)
	return email, m.err
}

func guestRecord() submission.SubmissionRecord {
	return submission.SubmissionRecord{
		Email:     "guest@example.org",
		FirstName: "Dalia",
		LastName:  "Shapiro",
		Address:   "6391 Swallow Ln",
	}
}

func TestBuildConfirmationEmail(t *testing.T) {
	tests := []struct {
		name            string
		preApproved     bool
		wantMessageType string
		wantBody        string
	}{
		{
			name:            "approved template",
			preApproved:     true,
			wantMessageType: messagingTypes.EMAIL_TYPE_GUEST_PREAPPROVED,
			wantBody:        "has been approved",
		},
		{
			name:            "follow-up template",
			preApproved:     false,
			wantMessageType: messagingTypes.EMAIL_TYPE_GUEST_FOLLOWUP,
			wantBody:        "has not yet been approved",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := BuildConfirmationEmail(guestRecord(), tt.preApproved, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if email.MessageType != tt.wantMessageType {
				t.Errorf("unexpected message type: %s", email.MessageType)
			}
			if !strings.Contains(email.Subject, "Dalia") || !strings.Contains(email.Subject, "Shapiro") {
				t.Errorf("subject must contain first and last name: %s", email.Subject)
			}
			if !strings.Contains(email.Content, "Dear Dalia,") || !strings.Contains(email.Content, tt.wantBody) {
				t.Errorf("unexpected content: %s", email.Content)
			}
			if len(email.To) != 1 || email.To[0] != "guest@example.org" {
				t.Errorf("unexpected recipients: %v", email.To)
			}
		})
	}
}

func TestSendFormConfirmationNotification(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		clearers := map[string]func(r *submission.SubmissionRecord){
			"email":     func(r *submission.SubmissionRecord) { r.Email = "" },
			"firstName": func(r *submission.SubmissionRecord) { r.FirstName = "" },
			"lastName":  func(r *submission.SubmissionRecord) { r.LastName = "" },
			"address":   func(r *submission.SubmissionRecord) { r.Address = "" },
		}
		for name, clear := range clearers {
			t.Run(name, func(t *testing.T) {
				sender := &mockSender{}
				n := NewNotifier(sender, nil, "chevra", nil)
				r := guestRecord()
				clear(&r)
				if n.SendFormConfirmationNotification(r, true) {
					t.Error("no notification expected")
				}
				if len(sender.sent) != 0 {
					t.Errorf("no send attempt expected, got %d", len(sender.sent))
				}
			})
		}
	})

	t.Run("sends approved email and records it", func(t *testing.T) {
		sender := &mockSender{}
		recorder := &mockRecorder{}
		n := NewNotifier(sender, recorder, "chevra", map[string]string{"orgPhone": "111-222"})

		if !n.SendFormConfirmationNotification(guestRecord(), true) {
			t.Fatal("notification expected")
		}
		if len(sender.sent) != 1 {
			t.Fatalf("one email expected, got %d", len(sender.sent))
		}
		if sender.sent[0].MessageType != messagingTypes.EMAIL_TYPE_GUEST_PREAPPROVED {
			t.Errorf("unexpected message type: %s", sender.sent[0].MessageType)
		}
		if !strings.Contains(sender.sent[0].Content, "Phone - 111-222") {
			t.Errorf("configured constants not used: %s", sender.sent[0].Content)
		}
		if !strings.Contains(sender.sent[0].Content, "Email - boulder.chevra@gmail.com") {
			t.Errorf("default constants not used: %s", sender.sent[0].Content)
		}
		if len(recorder.recorded) != 1 || recorder.instanceID != "chevra" {
			t.Errorf("sent email not recorded: %+v", recorder)
		}
	})

	t.Run("send failure is not retried", func(t *testing.T) {
		sender := &mockSender{err: errors.New("bridge down")}
		recorder := &mockRecorder{}
		n := NewNotifier(sender, recorder, "chevra", nil)

		if n.SendFormConfirmationNotification(guestRecord(), false) {
			t.Error("failure expected")
		}
		if len(sender.sent) != 1 {
			t.Errorf("exactly one attempt expected, got %d", len(sender.sent))
		}
		if len(recorder.recorded) != 0 {
			t.Error("failed email must not be recorded")
		}
	})

	t.Run("audit failure does not fail notification", func(t *testing.T) {
		sender := &mockSender{}
		recorder := &mockRecorder{err: errors.New("db down")}
		n := NewNotifier(sender, recorder, "chevra", nil)

		if !n.SendFormConfirmationNotification(guestRecord(), false) {
			t.Error("notification expected")
		}
	})
}
