package types

const (
	EMAIL_TYPE_GUEST_PREAPPROVED = "guest-preapproved"
	EMAIL_TYPE_GUEST_FOLLOWUP    = "guest-followup"
)

// EmailTemplate is a fixed plain-text message with a subject and body,
// both resolved with text/template against the message payload.
type EmailTemplate struct {
	MessageType string           `bson:"messageType" json:"messageType"`
	SubjectDef  string           `bson:"subjectDef" json:"subjectDef"`
	BodyDef     string           `bson:"bodyDef" json:"bodyDef"`
	HighPrio    bool             `bson:"highPrio" json:"highPrio"`
	Overrides   *HeaderOverrides `bson:"headerOverrides" json:"headerOverrides"`
}

type HeaderOverrides struct {
	From      string   `bson:"from" json:"from" yaml:"from"`
	Sender    string   `bson:"sender" json:"sender" yaml:"sender"`
	ReplyTo   []string `bson:"replyTo" json:"replyTo" yaml:"replyTo"`
	NoReplyTo bool     `bson:"noReplyTo" json:"noReplyTo" yaml:"noReplyTo"`
}
