package emailsending

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpclient "github.com/e5hapiro/chevra-guest-form/pkg/http-client"
	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
)

func TestSendOutgoingEmail(t *testing.T) {
	email := &messagingTypes.OutgoingEmail{
		MessageType: messagingTypes.EMAIL_TYPE_GUEST_PREAPPROVED,
		To:          []string{"guest@example.org"},
		Subject:     "Dalia Shapiro - Thank you",
		Content:     "Dear Dalia,",
		HighPrio:    true,
	}

	t.Run("not initialized", func(t *testing.T) {
		var s *BridgeSender
		if err := s.SendOutgoingEmail(email); err == nil {
			t.Error("error expected")
		}
		s = NewBridgeSender(&httpclient.ClientConfig{})
		if err := s.SendOutgoingEmail(email); err == nil {
			t.Error("error expected")
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		s := NewBridgeSender(httpclient.NewClientConfig("http://localhost:1", "", time.Second, nil))
		if err := s.SendOutgoingEmail(&messagingTypes.OutgoingEmail{To: []string{""}}); err == nil {
			t.Error("error expected")
		}
	})

	t.Run("sent to bridge", func(t *testing.T) {
		var got SendEmailReq
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/send-email" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"message": "email sent"}`))
		}))
		defer ts.Close()

		s := NewBridgeSender(httpclient.NewClientConfig(ts.URL, "key", time.Second, nil))
		if err := s.SendOutgoingEmail(email); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.To) != 1 || got.To[0] != "guest@example.org" || got.Subject != email.Subject || !got.HighPrio {
			t.Errorf("unexpected request: %+v", got)
		}
	})

	t.Run("bridge reports error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "no smtp server available"}`))
		}))
		defer ts.Close()

		s := NewBridgeSender(httpclient.NewClientConfig(ts.URL, "key", time.Second, nil))
		err := s.SendOutgoingEmail(email)
		if err == nil || !strings.Contains(err.Error(), "no smtp server available") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
