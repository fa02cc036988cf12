package httpclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRunHTTPcall(t *testing.T) {
	t.Run("posts json with api key", func(t *testing.T) {
		var gotKey, gotPath string
		var gotPayload map[string]string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("Api-Key")
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotPayload)
			_, _ = w.Write([]byte(`{"message": "ok"}`))
		}))
		defer ts.Close()

		c := NewClientConfig(ts.URL, "secret", time.Second, nil)
		resp, err := c.RunHTTPcall("/send-email", map[string]string{"subject": "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotKey != "secret" || gotPath != "/send-email" || gotPayload["subject"] != "hi" {
			t.Errorf("unexpected request: key=%s path=%s payload=%v", gotKey, gotPath, gotPayload)
		}
		if resp["message"] != "ok" {
			t.Errorf("unexpected response: %v", resp)
		}
	})

	t.Run("error status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "A valid API key missing"}`))
		}))
		defer ts.Close()

		c := NewClientConfig(ts.URL, "", time.Second, nil)
		resp, err := c.RunHTTPcall("/send-email", map[string]string{})
		if err == nil {
			t.Error("error expected")
		}
		if resp["error"] != "A valid API key missing" {
			t.Errorf("unexpected response: %v", resp)
		}
	})
}
