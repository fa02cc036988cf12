package notification

import (
	"log/slog"

	"github.com/e5hapiro/chevra-guest-form/pkg/messaging/templates"
	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"github.com/e5hapiro/chevra-guest-form/pkg/submission"
	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
)

type EmailSender interface {
	SendOutgoingEmail(email *messagingTypes.OutgoingEmail) error
}

type SentEmailRecorder interface {
	AddToSentEmails(instanceID string, email messagingTypes.OutgoingEmail) (messagingTypes.OutgoingEmail, error)
}

type Notifier struct {
	sender            EmailSender
	sentEmails        SentEmailRecorder
	instanceID        string
	templateConstants map[string]string
}

// NewNotifier creates a notifier. sentEmails may be nil when no audit log is kept.
func NewNotifier(sender EmailSender, sentEmails SentEmailRecorder, instanceID string, templateConstants map[string]string) *Notifier {
	constants := map[string]string{}
	for k, v := range templates.DefaultTemplateConstants {
		constants[k] = v
	}
	for k, v := range templateConstants {
		constants[k] = v
	}
	return &Notifier{
		sender:            sender,
		sentEmails:        sentEmails,
		instanceID:        instanceID,
		templateConstants: constants,
	}
}

func HasNotificationFields(r submission.SubmissionRecord) bool {
	return r.Email != "" && r.FirstName != "" && r.LastName != "" && r.Address != ""
}

// BuildConfirmationEmail renders the approved or follow-up email for the submitter.
func BuildConfirmationEmail(r submission.SubmissionRecord, preApproved bool, templateConstants map[string]string) (*messagingTypes.OutgoingEmail, error) {
	tDef := templates.GuestConfirmationTemplate(preApproved)
	subject, content, err := templates.ResolveEmail(tDef, templateConstants, map[string]string{
		templates.KEY_FIRST_NAME: r.FirstName,
		templates.KEY_LAST_NAME:  r.LastName,
	})
	if err != nil {
		return nil, err
	}
	return &messagingTypes.OutgoingEmail{
		MessageType:     tDef.MessageType,
		To:              []string{r.Email},
		Subject:         subject,
		Content:         content,
		HighPrio:        tDef.HighPrio,
		HeaderOverrides: tDef.Overrides,
	}, nil
}

// SendFormConfirmationNotification sends one confirmation email to the
// submitter. Incomplete contact data or a failed send is logged, never
// retried, and reported as false.
func (n *Notifier) SendFormConfirmationNotification(r submission.SubmissionRecord, preApproved bool) bool {
	if !HasNotificationFields(r) {
		slog.Error("missing required fields for email notification")
		return false
	}

	email, err := BuildConfirmationEmail(r, preApproved, n.templateConstants)
	if err != nil {
		slog.Error("could not build guest notification", slog.String("error", err.Error()))
		return false
	}

	if err := n.sender.SendOutgoingEmail(email); err != nil {
		slog.Error("error sending guest notification", slog.String("to", utils.BlurEmailAddress(r.Email)), slog.String("messageType", email.MessageType), slog.String("error", err.Error()))
		return false
	}
	slog.Info("guest notification sent", slog.String("to", utils.BlurEmailAddress(r.Email)), slog.String("messageType", email.MessageType))

	if n.sentEmails != nil {
		if _, err := n.sentEmails.AddToSentEmails(n.instanceID, *email); err != nil {
			slog.Error("failed to save sent email", slog.String("messageType", email.MessageType), slog.String("error", err.Error()))
		}
	}
	return true
}
