// Minimal FASTA parsing for analysis input. Records that fail nucleotide
// validation are dropped but counted, so callers can tell the user how
// many entries were skipped instead of failing silently.

package seq

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned when the input cannot be tokenized into FASTA
// records at all.
var ErrParse = errors.New("fasta parse error")

// ParseError carries context about why FASTA input could not be parsed.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fasta parse error: %s", e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Record is one named FASTA entry. Seq is upper-case with no line breaks.
type Record struct {
	Name string `json:"name"`
	Seq  string `json:"sequence"`
}

// FastaExtensions lists the upload extensions the service accepts. Format
// validation is content-based; the extension check is only a first filter.
var FastaExtensions = []string{".fasta", ".fa", ".fna", ".ffn", ".txt"}

// HasFastaExtension reports whether filename carries one of the accepted
// FASTA upload extensions.
func HasFastaExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range FastaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ParseFasta splits FASTA text into records in input order. Each record's
// sequence lines are concatenated and upper-cased, then validated; records
// failing validation are not returned, only counted in skipped.
//
// A *ParseError is returned when the text contains no record marker at all,
// so garbage input surfaces as a recoverable error rather than an empty
// result.
func ParseFasta(text string) (records []Record, skipped int, err error) {

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, 0, &ParseError{Msg: "input is empty"}
	}

	if !strings.HasPrefix(trimmed, ">") {
		return nil, 0, &ParseError{Msg: "input does not start with a FASTA header"}
	}

	var (
		name    string
		body    strings.Builder
		started bool
	)

	flush := func() {
		if !started {
			return
		}
		sequence := strings.ToUpper(body.String())
		if Validate(sequence) {
			records = append(records, Record{Name: name, Seq: sequence})
		} else {
			skipped++
		}
		body.Reset()
	}

	scanner := bufio.NewScanner(strings.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()
			// Record id is the header up to the first whitespace.
			name = ""
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				name = fields[0]
			}
			started = true
			continue
		}

		if !started {
			return nil, 0, &ParseError{Msg: "sequence data before first header"}
		}
		body.WriteString(line)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, 0, &ParseError{Msg: scanErr.Error()}
	}

	flush()

	return records, skipped, nil
}
