package main

import (
	"database/sql"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/genehack/genehack-amr/internal/util"
	"github.com/genehack/genehack-amr/logger"
	"github.com/genehack/genehack-amr/pkg/amr"
	"github.com/genehack/genehack-amr/pkg/blast"
	mydb "github.com/genehack/genehack-amr/pkg/db"
	"github.com/genehack/genehack-amr/pkg/handler"
	"github.com/genehack/genehack-amr/pkg/middle"
	"github.com/genehack/genehack-amr/pkg/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "modernc.org/sqlite"
)

var (
	genehack_data string
)

func main() {

	// Establish logger
	VERSION := "0.1.0"
	LOG_LEVEL := zapcore.InfoLevel

	if err := logger.InitLogger(LOG_LEVEL); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	genehack_data = os.Getenv("GENEHACK_DATA")

	if genehack_data == "" {
		logger.Warn("No local environment (GENEHACK_DATA), using default value (./data)")
		genehack_data = "./data"
	}

	if !util.DirExists(genehack_data) {
		if err := os.MkdirAll(path.Join(genehack_data, "db"), 0o755); err != nil {
			logger.Fatal("Cannot create data directory", zap.String("dir", genehack_data), zap.Error(err))
		}
	}

	genehack_sqlite := path.Join(genehack_data, "db/genehack_amr.db")

	// Connect to db and apply the schema.
	sqldb, err := sql.Open("sqlite", genehack_sqlite)
	if err != nil {
		logger.Fatal("Cannot open database", zap.String("DB_LOC", genehack_sqlite), zap.Error(err))
	}

	store, err := mydb.NewStore(sqldb)
	if err != nil {
		logger.Fatal("Cannot initialize database schema", zap.Error(err))
	}

	appctx := &handler.AppContext{
		Store:    store,
		Pipeline: amr.NewPipeline(pipelineOptions()),
		Reporter: newReporter(),
		Searcher: newSearcher(),
		Jobs:     handler.NewAnalysisJobManager(),
	}
	appctx.Assistant = report.NewAssistant(os.Getenv("OPENAI_API_KEY"))

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Open database on", zap.String("DB_LOC", genehack_sqlite))

	mux := NewRouter(appctx)

	// Apply middleware
	middlewareLogger := middle.CreateMiddlewareLogger(zapcore.DebugLevel)
	wrapped := middle.RequestIDMiddleware(middlewareLogger)(middle.LoggingMiddleware(middlewareLogger)(mux))

	addr := os.Getenv("GENEHACK_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	logger.Info("Server starting", zap.String("addr", addr))
	httpErr := http.ListenAndServe(addr, wrapped)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

// pipelineOptions reads the analysis tuning knobs from the environment.
// The pipeline is deterministic unless GENEHACK_RANDOMIZE is set.
func pipelineOptions() amr.Options {
	opts := amr.Options{Seed: amr.DefaultSeed}

	if seed := os.Getenv("GENEHACK_SEED"); seed != "" {
		if parsed, err := strconv.ParseInt(seed, 10, 64); err == nil {
			opts.Seed = parsed
		} else {
			logger.Warn("Ignoring malformed GENEHACK_SEED", zap.String("value", seed))
		}
	}

	if os.Getenv("GENEHACK_RANDOMIZE") == "1" {
		opts.Randomize = true
	}

	return opts
}

// newReporter wires the AI report backend when a key is present; without
// one the templated report is used directly.
func newReporter() report.Generator {
	apiKey := os.Getenv("OPENAI_API_KEY")

	if apiKey == "" {
		logger.Warn("No OPENAI_API_KEY set, reports use the templated fallback")
		return report.NewWithFallback(nil)
	}

	return report.NewWithFallback(report.NewOpenAIGenerator(apiKey))
}

// newSearcher prefers a local blastn installation when GENEHACK_BLAST_DB
// points at a database, and simulates hits otherwise.
func newSearcher() blast.Searcher {
	if blastDB := os.Getenv("GENEHACK_BLAST_DB"); blastDB != "" {
		searcher, err := blast.NewLocalSearcher(blastDB)
		if err == nil {
			logger.Info("Using local BLAST database", zap.String("db", blastDB))
			return searcher
		}
		logger.Warn("Local BLAST unavailable, using simulated search", zap.Error(err))
	}
	return blast.NewSimulatedSearcher(nil)
}

// Move to router.go in the next iteration
func NewRouter(appctx *handler.AppContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Analysis
	mux.HandleFunc("POST /api/v1/analyze", appctx.AnalyzeHandler)
	mux.HandleFunc("POST /api/v1/analyze/async", appctx.AnalyzeAsyncHandler)
	mux.HandleFunc("GET /api/v1/jobs/{job_id}", appctx.JobStatusHandler)

	// Stored results
	mux.HandleFunc("GET /api/v1/results", appctx.ResultHistoryHandler)
	mux.HandleFunc("GET /api/v1/results/{id}", appctx.ResultHandler)

	// Sequence store
	mux.HandleFunc("GET /api/v1/sequences", appctx.SequenceListHandler)
	mux.HandleFunc("POST /api/v1/sequences", appctx.SaveSequenceHandler)
	mux.HandleFunc("GET /api/v1/sequences/{id}", appctx.SequenceHandler)

	// Assistant
	mux.HandleFunc("POST /api/v1/chat", appctx.ChatHandler)
	mux.HandleFunc("GET /api/v1/suggestions/{id}", appctx.SuggestionsHandler)

	// Database search
	mux.HandleFunc("POST /api/v1/blast", appctx.BlastSearchHandler)

	// Reference catalogs
	mux.HandleFunc("GET /api/v1/catalog/genes", appctx.GeneCatalogHandler)
	mux.HandleFunc("GET /api/v1/catalog/mechanisms", appctx.MechanismCatalogHandler)
	mux.HandleFunc("GET /api/v1/catalog/classes", appctx.ClassCatalogHandler)
	mux.HandleFunc("GET /api/v1/catalog/organisms", appctx.OrganismCatalogHandler)

	mux.HandleFunc("GET /api/v1/health", appctx.HealthCheck)

	return mux
}
