package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/genehack/genehack-amr/logger"
	"github.com/genehack/genehack-amr/pkg/amr"
	"github.com/genehack/genehack-amr/pkg/report"
	"github.com/genehack/genehack-amr/pkg/seq"

	"github.com/genehack/genehack-amr/pkg/handler/request"

	"go.uber.org/zap"
)

// AnalyzeResponse is the full payload of one completed run.
type AnalyzeResponse struct {
	Status        string `json:"status"`
	SequenceName  string `json:"sequence_name"`
	SequenceType  string `json:"sequence_type"`
	ResultID      int64  `json:"result_id,omitempty"`
	SummaryReport string `json:"summary_report"`
	*amr.Result
}

// AnalyzeHandler runs the whole pipeline synchronously and returns the
// analysis payload. Invalid input is a 400; a parse failure of FASTA text
// surfaces as a user-facing message, not a crash.
func (appctx *AppContext) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {

	var req request.AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, status, err := appctx.runAnalysis(r, req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (appctx *AppContext) runAnalysis(r *http.Request, req request.AnalyzeRequest) (*AnalyzeResponse, int, error) {

	var (
		result       *amr.Result
		sequenceType string
		sequenceName string
		rawInput     string
		err          error
	)

	switch {
	case strings.TrimSpace(req.Fasta) != "":
		sequenceType = "fasta"
		rawInput = req.Fasta
		result, err = appctx.Pipeline.RunFasta(req.Fasta)
		if err != nil {
			if errors.Is(err, seq.ErrParse) {
				return nil, http.StatusBadRequest, err
			}
			return nil, http.StatusInternalServerError, err
		}
		sequenceName = req.SequenceName
		if sequenceName == "" {
			sequenceName = "FASTA upload"
		}

	case strings.TrimSpace(req.Sequence) != "":
		sequenceType = "raw"
		rawInput = req.Sequence
		if !seq.Validate(seq.Normalize(req.Sequence)) {
			return nil, http.StatusBadRequest, errors.New("Sequence contains invalid characters. Only A, T, G, C are allowed")
		}
		sequenceName = req.SequenceName
		result, err = appctx.Pipeline.RunRaw(sequenceName, req.Sequence)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		if sequenceName == "" {
			sequenceName = amr.RawSequenceName
		}

	default:
		return nil, http.StatusBadRequest, errors.New("Either sequence or fasta must be provided")
	}

	// Report generation never hard-fails: the generator falls back to the
	// templated report on any provider error.
	summary, err := appctx.Reporter.Generate(r.Context(), report.Payload{
		Genes:           result.Genes,
		Resistance:      result.ResistanceData,
		Recommendations: result.Recommendations,
	})
	if err != nil {
		logger.Error("Report generation failed", zap.Error(err))
		summary = ""
	}

	response := &AnalyzeResponse{
		Status:        "ok",
		SequenceName:  sequenceName,
		SequenceType:  sequenceType,
		SummaryReport: summary,
		Result:        result,
	}

	if req.Save && appctx.Store != nil {
		resultID, saveErr := appctx.Store.SaveAnalysisResult(r.Context(), sequenceName, sequenceType, result, summary)
		if saveErr != nil {
			logger.Error("Failed to save analysis result", zap.Error(saveErr))
		} else {
			response.ResultID = resultID
			if _, seqErr := appctx.Store.SaveSequence(r.Context(), sequenceName, sequenceType, rawInput, ""); seqErr != nil {
				logger.Error("Failed to save input sequence", zap.Error(seqErr))
			}
		}
	}

	return response, http.StatusOK, nil
}

// AnalyzeAsyncHandler queues an analysis job and returns its id
// immediately. Poll the job endpoint for the result.
func (appctx *AppContext) AnalyzeAsyncHandler(w http.ResponseWriter, r *http.Request) {

	var req request.AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Fasta) == "" && strings.TrimSpace(req.Sequence) == "" {
		writeError(w, http.StatusBadRequest, "Either sequence or fasta must be provided")
		return
	}

	job := appctx.Jobs.NewJob()

	go func() {
		appctx.Jobs.SetRunning(job.ID)

		// The request context dies with this handler; the job carries on
		// with its own.
		bg, cancel := appctx.Jobs.JobContext()
		defer cancel()

		response, _, err := appctx.runAnalysis(r.WithContext(bg), req)
		if err != nil {
			appctx.Jobs.FailJob(job.ID, err)
			return
		}
		appctx.Jobs.CompleteJob(job.ID, response)
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": string(job.Status),
		"job_id": job.ID,
	})
}

// JobStatusHandler reports one job's lifecycle state and, once completed,
// its payload.
func (appctx *AppContext) JobStatusHandler(w http.ResponseWriter, r *http.Request) {

	jobID := r.PathValue("job_id")

	job, ok := appctx.Jobs.GetJob(jobID)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown job id")
		return
	}

	writeJSON(w, http.StatusOK, job)
}
