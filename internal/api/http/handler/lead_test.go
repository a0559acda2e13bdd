package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/exitthree/formgate/internal/service/lead"
)

type fakeLeadService struct {
	err   error
	calls int
}

func (f *fakeLeadService) Submit(ctx context.Context, req lead.Submission) error {
	f.calls++
	return f.err
}

func newLeadApp(svc lead.Service) *fiber.App {
	app := fiber.New()
	h := NewLeadHandler(svc)
	app.Post("/api/submit-lead", h.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return res, out
}

func TestLeadSubmitSuccess(t *testing.T) {
	svc := &fakeLeadService{}
	app := newLeadApp(svc)

	res, out := postJSON(t, app, "/api/submit-lead",
		`{"full_name":"Jane Doe","position":"CTO","company_name":"Acme","email":"jane@acme.com","category":"web_dev"}`)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
	if out["success"] != true {
		t.Errorf("success = %v, want true", out["success"])
	}
	if out["message"] != "Lead submitted successfully" {
		t.Errorf("message = %v", out["message"])
	}
	if svc.calls != 1 {
		t.Errorf("service called %d times, want 1", svc.calls)
	}
}

func TestLeadSubmitValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		svcErr  error
		wantMsg string
	}{
		{"missing fields", lead.ErrMissingFields, "Missing required fields"},
		{"invalid email", lead.ErrInvalidEmail, "Invalid email format"},
		{"invalid category", lead.ErrInvalidCategory, "Invalid category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLeadService{err: tt.svcErr}
			app := newLeadApp(svc)

			res, out := postJSON(t, app, "/api/submit-lead", `{"full_name":"A"}`)

			if res.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", res.StatusCode)
			}
			if out["error"] != tt.wantMsg {
				t.Errorf("error = %v, want %q", out["error"], tt.wantMsg)
			}
		})
	}
}

func TestLeadSubmitMalformedBody(t *testing.T) {
	svc := &fakeLeadService{}
	app := newLeadApp(svc)

	res, _ := postJSON(t, app, "/api/submit-lead", `{not json`)

	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", res.StatusCode)
	}
	if svc.calls != 0 {
		t.Errorf("service called %d times on malformed body, want 0", svc.calls)
	}
}

func TestLeadSubmitDownstreamFailure(t *testing.T) {
	svc := &fakeLeadService{err: errors.New("dial tcp: connection refused")}
	app := newLeadApp(svc)

	res, out := postJSON(t, app, "/api/submit-lead",
		`{"full_name":"Jane Doe","position":"CTO","company_name":"Acme","email":"jane@acme.com","category":"web_dev"}`)

	if res.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", res.StatusCode)
	}
	if out["error"] != "Failed to submit lead" {
		t.Errorf("error = %v, want generic message", out["error"])
	}
	// The underlying error must never reach the client.
	if msg, _ := out["error"].(string); strings.Contains(msg, "dial tcp") {
		t.Errorf("internal error leaked to client: %q", msg)
	}
}
