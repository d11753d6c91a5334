package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
	pkgvalidator "github.com/Andre-Diamond/scripts-for-scraps/pkg/validator"
)

type stubService struct {
	years   []string
	results []*entities.ComparisonResult
}

func (s *stubService) ListYears(context.Context) ([]string, error)            { return s.years, nil }
func (s *stubService) ListMonths(context.Context, string) ([]string, error)   { return nil, nil }
func (s *stubService) ListFiles(context.Context, string, string) ([]string, error) {
	return nil, nil
}
func (s *stubService) CompareFile(context.Context, string, string, string) ([]*entities.ComparisonResult, error) {
	return s.results, nil
}
func (s *stubService) CompareMonth(context.Context, string, string) ([]*entities.ComparisonResult, error) {
	return s.results, nil
}
func (s *stubService) Reconcile(context.Context, string, string, string) ([]string, error) {
	return []string{"timeline/2024/January/week-1/2024-01-01-gamers-guild/meeting-summary.json"}, nil
}
func (s *stubService) ExportResults(context.Context, string, []*entities.ComparisonResult) (string, error) {
	return "store/export.json", nil
}
func (s *stubService) ListExports(context.Context, string) ([]string, error) { return nil, nil }
func (s *stubService) ExtractParticipants(context.Context) ([]string, error) {
	return []string{"Alice", "Bob"}, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func TestYearsHandler(t *testing.T) {
	e := newTestEcho()
	h := NewSyncHandler(&stubService{years: []string{"2023", "2024"}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/years", nil)
	rec := httptest.NewRecorder()
	if err := h.Years(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body["years"]) != 2 || body["years"][0] != "2023" {
		t.Fatalf("years = %v", body["years"])
	}
}

func TestCompareHandler(t *testing.T) {
	e := newTestEcho()
	results := []*entities.ComparisonResult{{
		Workgroup:  "Gamers Guild",
		SourcePath: "timeline/2024/January/week-1.md",
		Differences: []entities.Difference{
			{Field: "meetingInfo.name", CandidateValue: "Weekly", CanonicalValue: "Monthly"},
		},
	}}
	h := NewSyncHandler(&stubService{results: results}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/compare?year=2024&month=January&file=week-1.md", nil)
	rec := httptest.NewRecorder()
	if err := h.Compare(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 result, got %d", len(body))
	}
	if body[0]["workgroup"] != "Gamers Guild" {
		t.Errorf("workgroup = %v", body[0]["workgroup"])
	}
	if body[0]["match_found"] != false {
		t.Errorf("match_found = %v", body[0]["match_found"])
	}
}

func TestCompareHandlerValidation(t *testing.T) {
	e := newTestEcho()
	h := NewSyncHandler(&stubService{}, zap.NewNop())

	cases := []string{
		"/v1/sync/compare",
		"/v1/sync/compare?year=24&month=January&file=week-1.md",
		"/v1/sync/compare?year=2024&month=january&file=week-1.md",
		"/v1/sync/compare?year=2024&month=January&file=week-1.txt",
	}
	for _, url := range cases {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		if err := h.Compare(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", url, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "INVALID_ARGUMENT") {
			t.Errorf("%s: body = %s", url, rec.Body.String())
		}
	}
}

func TestReconcileHandler(t *testing.T) {
	e := newTestEcho()
	h := NewSyncHandler(&stubService{}, zap.NewNop())

	payload := `{"year":"2024","month":"January","file":"week-1.md"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sync/reconcile", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Reconcile(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body["committed"]) != 1 {
		t.Fatalf("committed = %v", body["committed"])
	}
}

func TestExportHandler(t *testing.T) {
	e := newTestEcho()
	h := NewSyncHandler(&stubService{results: []*entities.ComparisonResult{{Workgroup: "Gamers Guild"}}}, zap.NewNop())

	payload := `{"name":"january","year":"2024","month":"January"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sync/export", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Export(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["location"] != "store/export.json" {
		t.Errorf("location = %v", body["location"])
	}
	if body["results"] != float64(1) {
		t.Errorf("results = %v", body["results"])
	}
}
