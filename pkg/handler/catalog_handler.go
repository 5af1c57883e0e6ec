package handler

import (
	"net/http"

	"github.com/genehack/genehack-amr/pkg/amr"
)

// Catalog endpoints expose the reference tables that back the analysis
// pipeline so clients can render gene, mechanism and drug-class detail pages
// without hardcoding them.

func (appctx *AppContext) GeneCatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, amr.GeneCatalog)
}

func (appctx *AppContext) MechanismCatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, amr.Mechanisms)
}

func (appctx *AppContext) ClassCatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, amr.AntibioticClasses)
}

func (appctx *AppContext) OrganismCatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, amr.Organisms())
}
