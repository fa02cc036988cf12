package templates

import messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"

// Payload keys used by the guest templates
const (
	KEY_FIRST_NAME = "firstName"
	KEY_LAST_NAME  = "lastName"
	KEY_ORG_NAME   = "orgName"
	KEY_ORG_PHONE  = "orgPhone"
	KEY_ORG_EMAIL  = "orgEmail"
)

var DefaultTemplateConstants = map[string]string{
	KEY_ORG_NAME:  "Boulder Chevra Kadisha",
	KEY_ORG_PHONE: "303-842-5365",
	KEY_ORG_EMAIL: "boulder.chevra@gmail.com",
}

var guestPreApprovedTemplate = messagingTypes.EmailTemplate{
	MessageType: messagingTypes.EMAIL_TYPE_GUEST_PREAPPROVED,
	HighPrio:    true,
	SubjectDef:  `{{.firstName}} {{.lastName}} - Thank you for volunteering with Boulder's Chevra Kadisha`,
	BodyDef: `Dear {{.firstName}},

Your Volunteer Membership to the {{.orgName}} has been approved.

Shmira Schedule
When there is a death in the community, you will receive an email request to sit shmira. The email will include a link to a web portal where you may sign up for shmira. Please remember that this link is unique to you so please do not share it.

If you have any questions, do not hesitate to contact us by email or phone.

With gratitude,

{{.orgName}}
Phone - {{.orgPhone}}
Email - {{.orgEmail}}
`,
}

var guestFollowupTemplate = messagingTypes.EmailTemplate{
	MessageType: messagingTypes.EMAIL_TYPE_GUEST_FOLLOWUP,
	HighPrio:    true,
	SubjectDef:  `{{.firstName}} {{.lastName}} - Thank you for volunteering with Boulder's Chevra Kadisha - Let's talk`,
	BodyDef: `Dear {{.firstName}},

Your Volunteer Membership to the {{.orgName}} has not yet been approved.

Thank you for submitting your Guest Shomerim application with the {{.orgName}}.

We need to discuss the available options with you.

Please call us at {{.orgPhone}} or reply to this email with your availability to have a 15-minute conversation.
  {{.orgName}}
  Phone - {{.orgPhone}}
  Email - {{.orgEmail}}

We appreciate your willingness to perform this sacred duty and look forward to speaking with you.

With gratitude,

{{.orgName}}
`,
}

// GuestConfirmationTemplate selects the approved or the follow-up template.
func GuestConfirmationTemplate(preApproved bool) messagingTypes.EmailTemplate {
	if preApproved {
		return guestPreApprovedTemplate
	}
	return guestFollowupTemplate
}
