package emailsending

import (
	"errors"
	"fmt"

	httpclient "github.com/e5hapiro/chevra-guest-form/pkg/http-client"
	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
)

const sendEmailPath = "/send-email"

type SendEmailReq struct {
	To              []string                        `json:"to"`
	Subject         string                          `json:"subject"`
	Content         string                          `json:"content"`
	HighPrio        bool                            `json:"highPrio"`
	HeaderOverrides *messagingTypes.HeaderOverrides `json:"headerOverrides"`
}

// BridgeSender delivers outgoing emails through the SMTP bridge service.
type BridgeSender struct {
	httpClient *httpclient.ClientConfig
}

func NewBridgeSender(httpClient *httpclient.ClientConfig) *BridgeSender {
	return &BridgeSender{httpClient: httpClient}
}

func (s *BridgeSender) SendOutgoingEmail(outgoing *messagingTypes.OutgoingEmail) error {
	if s == nil || s.httpClient == nil || s.httpClient.RootURL == "" {
		return errors.New("connection to smtp bridge not initialized")
	}
	if outgoing == nil || len(outgoing.To) < 1 || outgoing.To[0] == "" {
		return errors.New("no recipients found")
	}

	sendEmailReq := SendEmailReq{
		To:              outgoing.To,
		Subject:         outgoing.Subject,
		Content:         outgoing.Content,
		HighPrio:        outgoing.HighPrio,
		HeaderOverrides: outgoing.HeaderOverrides,
	}
	resp, err := s.httpClient.RunHTTPcall(sendEmailPath, sendEmailReq)
	if resp != nil {
		if errMsg, hasError := resp["error"]; hasError {
			return fmt.Errorf("smtp bridge: %v", errMsg)
		}
	}
	return err
}
