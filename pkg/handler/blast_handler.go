package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/genehack/genehack-amr/logger"
	"github.com/genehack/genehack-amr/pkg/blast"
	"github.com/genehack/genehack-amr/pkg/handler/request"
	"github.com/genehack/genehack-amr/pkg/seq"
)

// BlastSearchHandler runs the provider-backed search path over a single
// sequence and returns hits grouped by antibiotic class plus per-antibiotic
// effectiveness.
func (appctx *AppContext) BlastSearchHandler(w http.ResponseWriter, r *http.Request) {

	var req request.BlastSearchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Sequence) == "" {
		writeError(w, http.StatusBadRequest, "Sequence cannot be empty")
		return
	}

	cleaned := seq.Normalize(req.Sequence)
	if !seq.Validate(cleaned) {
		writeError(w, http.StatusBadRequest, "Sequence contains invalid characters. Only A, T, G, C are allowed")
		return
	}

	name := req.SequenceName
	if name == "" {
		name = "Query_Sequence"
	}

	result, err := blast.SearchAMR(r.Context(), appctx.Searcher, cleaned, name, nil)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
