package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func savedResultID(t *testing.T, appctx *AppContext) string {
	t.Helper()

	rr := postJSON(t, appctx.AnalyzeHandler, "/api/v1/analyze", map[string]any{
		"sequence": mecaSequence(),
		"save":     true,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("seed analysis failed: %d %s", rr.Code, rr.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return "1"
}

func TestChatHandlerWithoutBackend(t *testing.T) {

	appctx := newTestContext(t)
	savedResultID(t, appctx)

	rr := postJSON(t, appctx.ChatHandler, "/api/v1/chat", map[string]any{
		"result_id": 1,
		"message":   "which genes were found?",
	})

	// Provider failures are a soft error, not a 5xx.
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" {
		t.Fatalf("expected soft error status, got %q", resp.Status)
	}
	if !strings.Contains(resp.Response, "unavailable") {
		t.Fatalf("unexpected reply: %q", resp.Response)
	}
}

func TestChatHandlerValidation(t *testing.T) {

	appctx := newTestContext(t)

	// Empty message.
	rr := postJSON(t, appctx.ChatHandler, "/api/v1/chat", map[string]any{
		"result_id": 1,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty message, got %d", rr.Code)
	}

	// Unknown result id.
	rr = postJSON(t, appctx.ChatHandler, "/api/v1/chat", map[string]any{
		"result_id": 42,
		"message":   "hello",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown result, got %d", rr.Code)
	}
}

func TestSuggestionsHandlerFallback(t *testing.T) {

	appctx := newTestContext(t)
	id := savedResultID(t, appctx)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions/"+id, nil)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	appctx.SuggestionsHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "suggested_questions") {
		t.Fatalf("missing suggestions payload: %s", rr.Body.String())
	}
}

func TestSuggestionsHandlerUnknownResult(t *testing.T) {

	appctx := newTestContext(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions/9", nil)
	req.SetPathValue("id", "9")
	rr := httptest.NewRecorder()
	appctx.SuggestionsHandler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
