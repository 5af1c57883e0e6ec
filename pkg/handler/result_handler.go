package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/genehack/genehack-amr/pkg/db"
)

// ResultHistoryHandler lists recent analysis runs, newest first. The
// optional limit query parameter caps the page size.
func (appctx *AppContext) ResultHistoryHandler(w http.ResponseWriter, r *http.Request) {

	limit := parsePositiveIntFallback(r.URL.Query().Get("limit"), 10)

	records, err := appctx.Store.AnalysisHistory(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []*db.AnalysisRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// ResultHandler fetches one stored analysis run by id.
func (appctx *AppContext) ResultHandler(w http.ResponseWriter, r *http.Request) {

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

	writeJSON(w, http.StatusOK, record)
}

func parsePositiveIntFallback(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
