package request

// Request bodies of the JSON API. Kept in their own package so handlers
// and tests share one definition.

// AnalyzeRequest starts an analysis run. Exactly one of Sequence or Fasta
// should be set; Fasta wins when both are present.
type AnalyzeRequest struct {
	SequenceName string `json:"sequence_name"`
	Sequence     string `json:"sequence"` // raw pasted nucleotides
	Fasta        string `json:"fasta"`    // FASTA text with 0..N records
	Save         bool   `json:"save"`     // persist result + input sequence
}

// ChatRequest is one user turn against a stored analysis.
type ChatRequest struct {
	ResultID int64  `json:"result_id"`
	Message  string `json:"message"`
}

// BlastSearchRequest runs the provider-backed search path.
type BlastSearchRequest struct {
	SequenceName string `json:"sequence_name"`
	Sequence     string `json:"sequence"`
}

// SaveSequenceRequest stores an input sequence without analyzing it.
type SaveSequenceRequest struct {
	Name        string `json:"name"`
	DataType    string `json:"data_type"` // "raw" or "fasta"
	Sequence    string `json:"sequence"`
	Description string `json:"description"`
}
