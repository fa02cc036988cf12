package apihandlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/e5hapiro/chevra-guest-form/pkg/formhandler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockProcessor struct {
	outcome formhandler.Outcome
	events  []formhandler.SubmissionEvent
}

func (m *mockProcessor) ProcessFormSubmit(ctx context.Context, event formhandler.SubmissionEvent) formhandler.Outcome {
	m.events = append(m.events, event)
	return m.outcome
}

func newTestRouter(p *mockProcessor) *gin.Engine {
	r := gin.New()
	r.GET("/", HealthCheckHandle)
	conf := formhandler.SheetConfig{SpreadsheetID: "sheet-id", SheetName: "Form Responses 1"}.WithDefaults()
	NewHTTPHandler([]string{"test-key"}, p, conf).AddRoutes(r.Group("/"))
	return r
}

func postFormSubmit(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/form-submit", strings.NewReader(body))
	req.Header.Set("Api-Key", "test-key")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFormSubmit(t *testing.T) {
	t.Run("event is built from request and sheet config", func(t *testing.T) {
		p := &mockProcessor{outcome: formhandler.OutcomeDone}
		w := postFormSubmit(newTestRouter(p), `{"values":["11/14/2025 16:19:17","guest@example.org","Dalia"],"row":12}`)
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d %s", w.Code, w.Body.String())
		}
		if len(p.events) != 1 {
			t.Fatalf("expected one processed event, got %d", len(p.events))
		}
		event := p.events[0]
		if event.Row.Row != 12 || event.Row.SpreadsheetID != "sheet-id" || event.Row.SheetName != "Form Responses 1" {
			t.Errorf("unexpected row ref: %+v", event.Row)
		}
		if len(event.Values) != 3 || event.Values[2] != "Dalia" {
			t.Errorf("unexpected values: %v", event.Values)
		}
		if event.UUID == "" || event.TokenColumn != 22 || event.ApprovalColumn != 23 {
			t.Errorf("unexpected event metadata: %+v", event)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp["outcome"] != string(formhandler.OutcomeDone) {
			t.Errorf("unexpected outcome: %v", resp)
		}
	})

	t.Run("failed pipeline still answers 200", func(t *testing.T) {
		p := &mockProcessor{outcome: formhandler.OutcomeFailed}
		w := postFormSubmit(newTestRouter(p), `{"values":[],"sheetName":"Other","row":3}`)
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", w.Code)
		}
		if len(p.events) != 1 || p.events[0].Row.SheetName != "Other" {
			t.Errorf("unexpected events: %+v", p.events)
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		for name, body := range map[string]string{
			"malformed json": `{"values":`,
			"missing row":    `{"values":["a"]}`,
			"negative row":   `{"values":["a"],"row":-1}`,
			"wrong types":    `{"values":"a","row":2}`,
		} {
			t.Run(name, func(t *testing.T) {
				p := &mockProcessor{outcome: formhandler.OutcomeDone}
				w := postFormSubmit(newTestRouter(p), body)
				if w.Code != http.StatusBadRequest {
					t.Errorf("unexpected status: %d", w.Code)
				}
				if len(p.events) != 0 {
					t.Error("no event expected")
				}
			})
		}
	})

	t.Run("invalid api key", func(t *testing.T) {
		p := &mockProcessor{outcome: formhandler.OutcomeDone}
		req := httptest.NewRequest(http.MethodPost, "/form-submit", strings.NewReader(`{"values":[],"row":2}`))
		req.Header.Set("Api-Key", "wrong")
		w := httptest.NewRecorder()
		newTestRouter(p).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest || len(p.events) != 0 {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&mockProcessor{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("unexpected status: %d", w.Code)
	}
}
