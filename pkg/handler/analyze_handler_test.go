package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/genehack/genehack-amr/pkg/amr"
	"github.com/genehack/genehack-amr/pkg/blast"
	"github.com/genehack/genehack-amr/pkg/db"
	"github.com/genehack/genehack-amr/pkg/report"
)

// newTestContext wires a fully offline AppContext: in-memory sqlite,
// deterministic pipeline, templated reports, simulated search.
func newTestContext(t *testing.T) *AppContext {
	t.Helper()

	handle, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { handle.Close() })

	store, err := db.NewStore(handle)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	return &AppContext{
		Store:     store,
		Pipeline:  amr.NewPipeline(amr.Options{}),
		Reporter:  report.NewWithFallback(nil),
		Assistant: report.NewAssistant(""),
		Searcher:  blast.NewSimulatedSearcher(nil),
		Jobs:      NewAnalysisJobManager(),
	}
}

// mecaSequence embeds the mecA probe in neutral G/C filler.
func mecaSequence() string {
	pad := strings.Repeat("GC", 400)
	return pad[:10] + amr.Signatures[0].Pattern + pad
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

func TestAnalyzeHandlerRawSequence(t *testing.T) {

	appctx := newTestContext(t)

	rr := postJSON(t, appctx.AnalyzeHandler, "/api/v1/analyze", map[string]any{
		"sequence": mecaSequence(),
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if resp.SequenceType != "raw" || resp.SequenceName != amr.RawSequenceName {
		t.Fatalf("unexpected sequence identity: %q %q", resp.SequenceType, resp.SequenceName)
	}
	if len(resp.Genes) != 1 || resp.Genes[0].Name != "mecA" {
		t.Fatalf("expected one mecA gene, got %+v", resp.Genes)
	}
	if len(resp.Recommendations) != len(amr.Roster) {
		t.Fatalf("expected %d recommendations, got %d", len(amr.Roster), len(resp.Recommendations))
	}
	if !strings.Contains(resp.SummaryReport, "Antimicrobial Resistance Analysis Summary") {
		t.Fatalf("missing templated summary, got %q", resp.SummaryReport)
	}
	if resp.ResultID != 0 {
		t.Fatalf("result should not be saved without save flag, got id %d", resp.ResultID)
	}
}

func TestAnalyzeHandlerFasta(t *testing.T) {

	appctx := newTestContext(t)

	fasta := ">iso1\n" + mecaSequence() + "\n>broken\nATGCN\n"
	rr := postJSON(t, appctx.AnalyzeHandler, "/api/v1/analyze", map[string]any{
		"sequence_name": "batch_1",
		"fasta":         fasta,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SequenceType != "fasta" || resp.SequenceName != "batch_1" {
		t.Fatalf("unexpected sequence identity: %+v", resp)
	}
	if resp.SkippedRecords != 1 {
		t.Fatalf("expected 1 skipped record, got %d", resp.SkippedRecords)
	}
}

func TestAnalyzeHandlerRejectsBadInput(t *testing.T) {

	appctx := newTestContext(t)

	cases := []struct {
		name     string
		body     map[string]any
		wantCode int
		wantMsg  string
	}{
		{"invalid characters", map[string]any{"sequence": "ATGCXYZ"},
			http.StatusBadRequest, "Only A, T, G, C are allowed"},
		{"no input at all", map[string]any{},
			http.StatusBadRequest, "Either sequence or fasta"},
		{"fasta without header", map[string]any{"fasta": "ATGCATGC"},
			http.StatusBadRequest, "FASTA header"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := postJSON(t, appctx.AnalyzeHandler, "/api/v1/analyze", c.body)
			if rr.Code != c.wantCode {
				t.Fatalf("expected %d, got %d: %s", c.wantCode, rr.Code, rr.Body.String())
			}
			if !strings.Contains(rr.Body.String(), c.wantMsg) {
				t.Fatalf("expected message containing %q, got %s", c.wantMsg, rr.Body.String())
			}
		})
	}
}

func TestAnalyzeHandlerMalformedJSON(t *testing.T) {

	appctx := newTestContext(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("{nope"))
	rr := httptest.NewRecorder()
	appctx.AnalyzeHandler(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAnalyzeHandlerSavesResult(t *testing.T) {

	appctx := newTestContext(t)

	rr := postJSON(t, appctx.AnalyzeHandler, "/api/v1/analyze", map[string]any{
		"sequence_name": "saved_run",
		"sequence":      mecaSequence(),
		"save":          true,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ResultID == 0 {
		t.Fatal("expected a stored result id")
	}

	// The run is now retrievable.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/results/1", nil)
	req.SetPathValue("id", "1")
	rr = httptest.NewRecorder()
	appctx.ResultHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "saved_run") {
		t.Fatalf("stored record missing sequence name: %s", rr.Body.String())
	}

	// And the input sequence was stored alongside it.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/sequences", nil)
	rr = httptest.NewRecorder()
	appctx.SequenceListHandler(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "saved_run") {
		t.Fatalf("input sequence not stored: %d %s", rr.Code, rr.Body.String())
	}
}

func TestAnalyzeAsyncLifecycle(t *testing.T) {

	appctx := newTestContext(t)

	rr := postJSON(t, appctx.AnalyzeAsyncHandler, "/api/v1/analyze/async", map[string]any{
		"sequence": mecaSequence(),
	})
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rr.Code, rr.Body.String())
	}

	var ack map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	jobID := ack["job_id"]
	if jobID == "" {
		t.Fatal("missing job id")
	}

	// Poll until the background goroutine finishes.
	deadline := time.Now().Add(5 * time.Second)
	for {
		job, ok := appctx.Jobs.GetJob(jobID)
		if !ok {
			t.Fatal("job disappeared")
		}
		if job.Status == JobCompleted {
			if job.Result == nil || len(job.Result.Genes) != 1 {
				t.Fatalf("unexpected job result: %+v", job.Result)
			}
			break
		}
		if job.Status == JobFailed {
			t.Fatalf("job failed: %s", job.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in %s", job.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// The status endpoint serves the finished job.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID, nil)
	req.SetPathValue("job_id", jobID)
	rr = httptest.NewRecorder()
	appctx.JobStatusHandler(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), string(JobCompleted)) {
		t.Fatalf("unexpected job status response: %d %s", rr.Code, rr.Body.String())
	}
}

func TestJobStatusHandlerUnknownJob(t *testing.T) {

	appctx := newTestContext(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/nope", nil)
	req.SetPathValue("job_id", "nope")
	rr := httptest.NewRecorder()
	appctx.JobStatusHandler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
