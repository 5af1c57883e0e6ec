// Exec-backed searcher for a local blastn installation.

package blast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoDatabase is returned when a LocalSearcher is built without a
// database path.
var ErrNoDatabase = errors.New("blast database path is empty")

// LocalSearcher shells out to blastn against a local database. The hit
// schema is filled from tabular (-outfmt 6) output.
type LocalSearcher struct {
	DB      string // path to the formatted BLAST database
	MaxHits int    // 0 means the default of 10
}

func NewLocalSearcher(db string) (*LocalSearcher, error) {
	if db == "" {
		return nil, ErrNoDatabase
	}
	return &LocalSearcher{DB: db}, nil
}

func (s *LocalSearcher) Search(ctx context.Context, sequence string) ([]Hit, error) {

	cleaned := strings.TrimSpace(sequence)
	if cleaned == "" {
		return nil, errors.New("input sequence is empty")
	}

	maxHits := s.MaxHits
	if maxHits <= 0 {
		maxHits = 10
	}

	// stitle adds the subject description so hits can be categorized by
	// gene name downstream.
	args := []string{
		"-db", s.DB,
		"-max_target_seqs", strconv.Itoa(maxHits),
		"-outfmt", "6 sacc stitle slen evalue pident bitscore qstart qend sstart send",
	}
	cmd := exec.CommandContext(ctx, "blastn", args...)
	cmd.Stdin = strings.NewReader(">query\n" + cleaned + "\n")

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to execute blastn: %w - %s", err, stderr.String())
	}

	return parseTabular(&out)
}

func parseTabular(out *bytes.Buffer) ([]Hit, error) {

	var hits []Hit

	for _, line := range strings.Split(out.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 10 {
			return nil, fmt.Errorf("unexpected blastn output line: %q", line)
		}

		slen, _ := strconv.Atoi(fields[2])
		evalue, _ := strconv.ParseFloat(fields[3], 64)
		pident, _ := strconv.ParseFloat(fields[4], 64)
		bitscore, _ := strconv.ParseFloat(fields[5], 64)
		qstart, _ := strconv.Atoi(fields[6])
		qend, _ := strconv.Atoi(fields[7])
		sstart, _ := strconv.Atoi(fields[8])
		send, _ := strconv.Atoi(fields[9])

		// Keep only hits with a reasonable e-value, same cutoff as the
		// online search path.
		if evalue >= 0.01 {
			continue
		}

		hits = append(hits, Hit{
			Title:      fields[1],
			Accession:  fields[0],
			Length:     slen,
			EValue:     evalue,
			Identity:   pident / 100.0,
			Score:      int(bitscore),
			QueryStart: qstart,
			QueryEnd:   qend,
			SbjctStart: sstart,
			SbjctEnd:   send,
		})
	}

	return hits, nil
}
