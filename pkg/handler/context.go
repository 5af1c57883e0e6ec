package handler

// DI for all handlers alike.

import (
	"encoding/json"
	"net/http"

	"github.com/genehack/genehack-amr/pkg/amr"
	"github.com/genehack/genehack-amr/pkg/blast"
	"github.com/genehack/genehack-amr/pkg/db"
	"github.com/genehack/genehack-amr/pkg/report"
)

// AppContext carries the shared collaborators every handler needs.
type AppContext struct {
	Store     *db.Store
	Pipeline  *amr.Pipeline
	Reporter  report.Generator
	Assistant *report.Assistant
	Searcher  blast.Searcher
	Jobs      *AnalysisJobManager
}

// ErrorResponse is the uniform error payload of the JSON API.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: "error", Error: message})
}
