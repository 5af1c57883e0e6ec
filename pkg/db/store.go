// Package db persists analysis results and raw sequences in sqlite. The
// four result collections are stored as opaque JSON, the way the report
// and UI layers consume them.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/genehack/genehack-amr/pkg/amr"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS analysis_results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	sequence_name TEXT,
	sequence_type TEXT,
	genes TEXT,
	proteins TEXT,
	resistance_data TEXT,
	recommendations TEXT,
	summary_report TEXT,
	num_genes INTEGER,
	num_resistance_markers INTEGER
);

CREATE TABLE IF NOT EXISTS sequence_data (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	name TEXT,
	data_type TEXT,
	sequence TEXT,
	description TEXT
);
`

// Store wraps the sqlite handle with the operations the handlers need.
type Store struct {
	db *sql.DB
}

// NewStore builds a store and creates the schema if missing.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

// AnalysisRecord is one stored analysis run.
type AnalysisRecord struct {
	ID                   int64                  `json:"id"`
	CreatedAt            string                 `json:"created_at"`
	SequenceName         string                 `json:"sequence_name"`
	SequenceType         string                 `json:"sequence_type"`
	NumGenes             int                    `json:"num_genes"`
	NumResistanceMarkers int                    `json:"num_resistance_markers"`
	Genes                []amr.Gene             `json:"genes"`
	Proteins             []amr.Protein          `json:"proteins"`
	ResistanceData       []amr.ResistanceRecord `json:"resistance_data"`
	Recommendations      []amr.Recommendation   `json:"recommendations"`
	SummaryReport        string                 `json:"summary_report"`
}

// SequenceRecord is one stored input sequence.
type SequenceRecord struct {
	ID          int64  `json:"id"`
	CreatedAt   string `json:"created_at"`
	Name        string `json:"name"`
	DataType    string `json:"data_type"` // "fasta" or "raw"
	Sequence    string `json:"sequence"`
	Description string `json:"description,omitempty"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SaveAnalysisResult stores one run and returns its id.
func (s *Store) SaveAnalysisResult(ctx context.Context, sequenceName, sequenceType string, result *amr.Result, summaryReport string) (int64, error) {

	genes, err := json.Marshal(result.Genes)
	if err != nil {
		return 0, err
	}
	proteins, err := json.Marshal(result.Proteins)
	if err != nil {
		return 0, err
	}
	resistance, err := json.Marshal(result.ResistanceData)
	if err != nil {
		return 0, err
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_results
			(created_at, sequence_name, sequence_type, genes, proteins,
			 resistance_data, recommendations, summary_report,
			 num_genes, num_resistance_markers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		now(), sequenceName, sequenceType, string(genes), string(proteins),
		string(resistance), string(recommendations), summaryReport,
		len(result.Genes), len(result.ResistanceData))
	if err != nil {
		return 0, fmt.Errorf("save analysis result: %w", err)
	}

	return res.LastInsertId()
}

// GetAnalysisResult fetches one run by id. ErrNotFound when missing.
func (s *Store) GetAnalysisResult(ctx context.Context, id int64) (*AnalysisRecord, error) {

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, sequence_name, sequence_type, genes, proteins,
		       resistance_data, recommendations, summary_report,
		       num_genes, num_resistance_markers
		FROM analysis_results WHERE id = ?`, id)

	record, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: analysis result %d", ErrNotFound, id)
	}
	return record, err
}

// AnalysisHistory returns the most recent runs, newest first.
func (s *Store) AnalysisHistory(ctx context.Context, limit int) ([]*AnalysisRecord, error) {

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, sequence_name, sequence_type, genes, proteins,
		       resistance_data, recommendations, summary_report,
		       num_genes, num_resistance_markers
		FROM analysis_results ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*AnalysisRecord
	for rows.Next() {
		record, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*AnalysisRecord, error) {

	var record AnalysisRecord
	var genes, proteins, resistance, recommendations sql.NullString
	var summary sql.NullString

	err := row.Scan(&record.ID, &record.CreatedAt, &record.SequenceName,
		&record.SequenceType, &genes, &proteins, &resistance,
		&recommendations, &summary, &record.NumGenes,
		&record.NumResistanceMarkers)
	if err != nil {
		return nil, err
	}

	record.SummaryReport = summary.String

	// Unreadable JSON degrades to empty collections rather than failing
	// the whole fetch.
	record.Genes = []amr.Gene{}
	record.Proteins = []amr.Protein{}
	record.ResistanceData = []amr.ResistanceRecord{}
	record.Recommendations = []amr.Recommendation{}

	if genes.Valid {
		_ = json.Unmarshal([]byte(genes.String), &record.Genes)
	}
	if proteins.Valid {
		_ = json.Unmarshal([]byte(proteins.String), &record.Proteins)
	}
	if resistance.Valid {
		_ = json.Unmarshal([]byte(resistance.String), &record.ResistanceData)
	}
	if recommendations.Valid {
		_ = json.Unmarshal([]byte(recommendations.String), &record.Recommendations)
	}

	return &record, nil
}

// SaveSequence stores one input sequence and returns its id.
func (s *Store) SaveSequence(ctx context.Context, name, dataType, sequence, description string) (int64, error) {

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO sequence_data (created_at, name, data_type, sequence, description)
		VALUES (?, ?, ?, ?, ?)`,
		now(), name, dataType, sequence, description)
	if err != nil {
		return 0, fmt.Errorf("save sequence: %w", err)
	}

	return res.LastInsertId()
}

// GetSequence fetches one stored sequence by id. ErrNotFound when missing.
func (s *Store) GetSequence(ctx context.Context, id int64) (*SequenceRecord, error) {

	var record SequenceRecord
	var description sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, name, data_type, sequence, description
		FROM sequence_data WHERE id = ?`, id).
		Scan(&record.ID, &record.CreatedAt, &record.Name, &record.DataType,
			&record.Sequence, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: sequence %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	record.Description = description.String
	return &record, nil
}

// StoredSequences returns the most recent sequences, newest first.
func (s *Store) StoredSequences(ctx context.Context, limit int) ([]*SequenceRecord, error) {

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, name, data_type, sequence, description
		FROM sequence_data ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*SequenceRecord
	for rows.Next() {
		var record SequenceRecord
		var description sql.NullString
		if err := rows.Scan(&record.ID, &record.CreatedAt, &record.Name,
			&record.DataType, &record.Sequence, &description); err != nil {
			return nil, err
		}
		record.Description = description.String
		records = append(records, &record)
	}

	return records, rows.Err()
}
