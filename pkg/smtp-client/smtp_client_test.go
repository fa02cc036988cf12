package smtp_client

import (
	"slices"
	"testing"

	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"gopkg.in/yaml.v2"
)

func TestNewSmtpClients(t *testing.T) {
	if _, err := NewSmtpClients(SmtpServerList{}); err == nil {
		t.Error("expected error for empty server list")
	}

	_, err := NewSmtpClients(SmtpServerList{
		Servers: []SmtpServer{{Host: "localhost", Port: "not-a-port", Connections: 1}},
	})
	if err == nil {
		t.Error("expected error when no pool can be created")
	}
}

func TestSenderHeaders(t *testing.T) {
	sc := &SmtpClients{servers: SmtpServerList{
		From:    "Chevra <noreply@example.org>",
		Sender:  "noreply@example.org",
		ReplyTo: []string{"boulder.chevra@example.org"},
	}}

	tests := []struct {
		name        string
		overrides   *messagingTypes.HeaderOverrides
		wantFrom    string
		wantSender  string
		wantReplyTo []string
	}{
		{
			name:        "defaults",
			overrides:   nil,
			wantFrom:    "Chevra <noreply@example.org>",
			wantSender:  "noreply@example.org",
			wantReplyTo: []string{"boulder.chevra@example.org"},
		},
		{
			name:        "override from and reply to",
			overrides:   &messagingTypes.HeaderOverrides{From: "other@example.org", ReplyTo: []string{"a@example.org"}},
			wantFrom:    "other@example.org",
			wantSender:  "noreply@example.org",
			wantReplyTo: []string{"a@example.org"},
		},
		{
			name:        "no reply to",
			overrides:   &messagingTypes.HeaderOverrides{NoReplyTo: true, ReplyTo: []string{"a@example.org"}},
			wantFrom:    "Chevra <noreply@example.org>",
			wantSender:  "noreply@example.org",
			wantReplyTo: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, sender, replyTo := sc.senderHeaders(tt.overrides)
			if from != tt.wantFrom || sender != tt.wantSender || !slices.Equal(replyTo, tt.wantReplyTo) {
				t.Errorf("unexpected headers: %q %q %v", from, sender, replyTo)
			}
		})
	}
}

func TestSmtpServerListFromYaml(t *testing.T) {
	content := `servers:
  - host: smtp.example.org
    port: "587"
    connections: 2
    insecureSkipVerify: false
    auth:
      user: chevra
      password: secret
    sendTimeout: 5
  - host: smtp2.example.org
    port: "25"
from: noreply@example.org
sender: noreply@example.org
replyTo:
  - boulder.chevra@example.org
`
	var sl SmtpServerList
	if err := yaml.UnmarshalStrict([]byte(content), &sl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sl.Servers) != 2 || sl.Servers[0].Address() != "smtp.example.org:587" || sl.Servers[0].AuthData.Username != "chevra" {
		t.Errorf("unexpected servers: %+v", sl.Servers)
	}

	sl.Servers[1].SetPassword("relay-pw")
	if sl.Servers[1].AuthData.Password != "relay-pw" || sl.Servers[0].AuthData.Password != "secret" {
		t.Errorf("unexpected auth data: %+v %+v", sl.Servers[0].AuthData, sl.Servers[1].AuthData)
	}

	if err := yaml.UnmarshalStrict([]byte("unknown_key: 1\n"), &sl); err == nil {
		t.Error("expected error for unknown key")
	}
}
