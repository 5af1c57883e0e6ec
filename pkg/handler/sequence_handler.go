package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/genehack/genehack-amr/pkg/db"
	"github.com/genehack/genehack-amr/pkg/handler/request"
	"github.com/genehack/genehack-amr/pkg/seq"
)

// SaveSequenceHandler stores an input sequence without running the
// pipeline. Raw sequences are validated; FASTA content must parse.
func (appctx *AppContext) SaveSequenceHandler(w http.ResponseWriter, r *http.Request) {

	var req request.SaveSequenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.DataType {
	case "raw":
		if !seq.Validate(seq.Normalize(req.Sequence)) {
			writeError(w, http.StatusBadRequest, "Sequence contains invalid characters. Only A, T, G, C are allowed")
			return
		}
	case "fasta":
		if _, _, err := seq.ParseFasta(req.Sequence); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "data_type must be raw or fasta")
		return
	}

	id, err := appctx.Store.SaveSequence(r.Context(), req.Name, req.DataType, req.Sequence, req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"status": "ok", "id": id})
}

// SequenceHandler fetches one stored sequence by id.
func (appctx *AppContext) SequenceHandler(w http.ResponseWriter, r *http.Request) {

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid sequence id")
		return
	}

	record, err := appctx.Store.GetSequence(r.Context(), id)
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

// SequenceListHandler lists recently stored sequences.
func (appctx *AppContext) SequenceListHandler(w http.ResponseWriter, r *http.Request) {

	limit := parsePositiveIntFallback(r.URL.Query().Get("limit"), 10)

	records, err := appctx.Store.StoredSequences(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []*db.SequenceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
