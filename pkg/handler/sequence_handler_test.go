package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSaveSequenceHandler(t *testing.T) {

	appctx := newTestContext(t)

	rr := postJSON(t, appctx.SaveSequenceHandler, "/api/v1/sequences", map[string]any{
		"name":        "ward_swab",
		"data_type":   "raw",
		"sequence":    "ATGCATGC",
		"description": "pre-analysis upload",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	// Retrievable by id.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sequences/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	appctx.SequenceHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ward_swab") ||
		!strings.Contains(rec.Body.String(), "pre-analysis upload") {
		t.Fatalf("stored sequence incomplete: %s", rec.Body.String())
	}
}

func TestSaveSequenceHandlerFasta(t *testing.T) {

	appctx := newTestContext(t)

	rr := postJSON(t, appctx.SaveSequenceHandler, "/api/v1/sequences", map[string]any{
		"name":      "batch",
		"data_type": "fasta",
		"sequence":  ">iso1\nATGC\n",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSaveSequenceHandlerValidation(t *testing.T) {

	appctx := newTestContext(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"bad raw sequence", map[string]any{"name": "x", "data_type": "raw", "sequence": "ATGCN"}},
		{"bad fasta", map[string]any{"name": "x", "data_type": "fasta", "sequence": "no header"}},
		{"unknown data type", map[string]any{"name": "x", "data_type": "genbank", "sequence": "ATGC"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := postJSON(t, appctx.SaveSequenceHandler, "/api/v1/sequences", c.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestSequenceHandlerNotFound(t *testing.T) {

	appctx := newTestContext(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sequences/5", nil)
	req.SetPathValue("id", "5")
	rr := httptest.NewRecorder()
	appctx.SequenceHandler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestResultHistoryHandlerEmpty(t *testing.T) {

	appctx := newTestContext(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/results", nil)
	rr := httptest.NewRecorder()
	appctx.ResultHistoryHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	// Empty history serializes to an empty list, not null.
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %s", rr.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {

	appctx := newTestContext(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rr := httptest.NewRecorder()
	appctx.HealthCheck(rr, req)

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"health":"ok"`) {
		t.Fatalf("unexpected health response: %d %s", rr.Code, rr.Body.String())
	}
}

func TestCatalogHandlers(t *testing.T) {

	appctx := newTestContext(t)

	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"genes", appctx.GeneCatalogHandler, "mecA"},
		{"mechanisms", appctx.MechanismCatalogHandler, ""},
		{"classes", appctx.ClassCatalogHandler, ""},
		{"organisms", appctx.OrganismCatalogHandler, "Staphylococcus aureus"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/"+c.name, nil)
			rr := httptest.NewRecorder()
			c.handler(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
			if len(strings.TrimSpace(rr.Body.String())) < 3 {
				t.Fatalf("empty catalog payload: %s", rr.Body.String())
			}
			if c.want != "" && !strings.Contains(rr.Body.String(), c.want) {
				t.Fatalf("catalog missing %q: %s", c.want, rr.Body.String())
			}
		})
	}
}
