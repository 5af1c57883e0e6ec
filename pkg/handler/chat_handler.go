package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/genehack/genehack-amr/pkg/db"
	"github.com/genehack/genehack-amr/pkg/handler/request"
	"github.com/genehack/genehack-amr/pkg/report"
)

// ChatResponse is one assistant reply.
type ChatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

// ChatHandler answers a question against a stored analysis. The payload of
// the referenced run is injected into the conversation as context.
// Backend failures come back as a message, not a 5xx: the conversation
// surface must stay usable without the provider.
func (appctx *AppContext) ChatHandler(w http.ResponseWriter, r *http.Request) {

	var req request.ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	record, err := appctx.Store.GetAnalysisResult(r.Context(), req.ResultID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	history := report.NewHistory()
	history, err = report.WithContext(history, report.Payload{
		Genes:           record.Genes,
		Resistance:      record.ResistanceData,
		Recommendations: record.Recommendations,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reply, _, err := appctx.Assistant.Chat(r.Context(), history, req.Message)
	if err != nil {
		writeJSON(w, http.StatusOK, ChatResponse{
			Status:   "error",
			Response: "The assistant is unavailable: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Status: "ok", Response: reply})
}

// SuggestionsHandler returns suggested questions and research directions
// for a stored analysis, falling back to a fixed set without a backend.
func (appctx *AppContext) SuggestionsHandler(w http.ResponseWriter, r *http.Request) {

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid result id")
		return
	}

	record, err := appctx.Store.GetAnalysisResult(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	suggestions := appctx.Assistant.Suggest(r.Context(), report.Payload{
		Genes:           record.Genes,
		Resistance:      record.ResistanceData,
		Recommendations: record.Recommendations,
	})

	writeJSON(w, http.StatusOK, suggestions)
}
