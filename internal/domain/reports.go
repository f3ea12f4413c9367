package domain

// SourceStatus tells how the processing of a single source ended.
type SourceStatus string

const (
	SourceImported   SourceStatus = "imported"
	SourceMissing    SourceStatus = "missing"
	SourceReadFailed SourceStatus = "read_failed"
)

// SourceOutcome records what happened to one configured source.
type SourceOutcome struct {
	Source   string       `json:"source"`
	Status   SourceStatus `json:"status"`
	Imported int          `json:"imported"`
	Skipped  int          `json:"skipped"`
	// CloseError is set when the source was opened but could not be released.
	CloseError string `json:"close_error,omitempty"`
}

// Summary holds the aggregate statistics over the accumulated collection.
type Summary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Max   float64 `json:"max"`
}

// ImportResult is the outcome of the ingestion phase.
type ImportResult struct {
	Transactions []Transaction
	Sources      []SourceOutcome
}

// MergeReport is the top-level structure for the optional JSON output.
type MergeReport struct {
	RunID        string          `json:"run_id"`
	Summary      Summary         `json:"summary"`
	Sources      []SourceOutcome `json:"sources"`
	Transactions []Transaction   `json:"transactions"`
}
