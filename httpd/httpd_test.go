package httpd

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dialworks/campaign-sheets/config"
)

func testServer(t *testing.T) *Server {
	cfg := config.Config{
		Credentials:       []byte(`{}`),
		SpreadsheetId:     "test",
		SettingsWorksheet: "AhmedSettings",
	}

	server, err := NewServer(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Unexpected error returned from NewServer (%v)", err)
	}

	return server
}

func TestIndexPage(t *testing.T) {
	server := testServer(t)

	rq := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	server.Router().ServeHTTP(w, rq)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %v", w.Code)
	}

	page := w.Body.String()
	for _, expected := range []string{"Log type", "CTC", "worksheet"} {
		if !strings.Contains(page, expected) {
			t.Errorf("Expected page to contain '%s'", expected)
		}
	}
}

func TestHealthz(t *testing.T) {
	server := testServer(t)

	rq := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	server.Router().ServeHTTP(w, rq)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %v", w.Code)
	}
}

func TestUpdateRejectsMissingWorksheet(t *testing.T) {
	server := testServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	form.WriteField("mode", "CTC")
	form.WriteField("day", "1")
	form.Close()

	rq := httptest.NewRequest(http.MethodPost, "/update", &body)
	rq.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()

	server.Router().ServeHTTP(w, rq)

	if !strings.Contains(w.Body.String(), "Worksheet name is required") {
		t.Errorf("Expected a 'worksheet required' error on the form page")
	}
}

func TestUpdateRejectsInvalidDay(t *testing.T) {
	server := testServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	form.WriteField("worksheet", "Week 34")
	form.WriteField("mode", "CTC")
	form.WriteField("day", "6")
	form.Close()

	rq := httptest.NewRequest(http.MethodPost, "/update", &body)
	rq.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()

	server.Router().ServeHTTP(w, rq)

	if !strings.Contains(w.Body.String(), "Day of the week") {
		t.Errorf("Expected a 'day of the week' error on the form page")
	}
}
