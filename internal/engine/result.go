// Package engine validates batches of value documents against registered
// record types and aggregates the outcomes.
package engine

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the outcome of one document construction.
type Status string

const (
	// StatusPass indicates the document constructed successfully
	StatusPass Status = "pass"
	// StatusFail indicates the document was rejected by validation
	StatusFail Status = "fail"
	// StatusError indicates the document could not be processed at all
	// (e.g. it names a record type the schema does not declare)
	StatusError Status = "error"
)

// Error kinds attached to failed document results. They mirror the engine's
// error taxonomy one to one.
const (
	KindUnknownField  = "unknown_field"
	KindTypeMismatch  = "type_mismatch"
	KindPrecondition  = "precondition_failed"
	KindMissingFields = "missing_fields"
	KindUnknownRecord = "unknown_record"
)

// RunResult represents the complete result of validating a document batch.
type RunResult struct {
	RunID         string           `json:"run_id" yaml:"run_id"`
	SchemaName    string           `json:"schema_name" yaml:"schema_name"`
	SchemaVersion string           `json:"schema_version" yaml:"schema_version"`
	StartTime     time.Time        `json:"start_time" yaml:"start_time"`
	EndTime       time.Time        `json:"end_time" yaml:"end_time"`
	Duration      time.Duration    `json:"duration_ms" yaml:"duration_ms"`
	Documents     []DocumentResult `json:"documents" yaml:"documents"`
	Summary       ResultSummary    `json:"summary" yaml:"summary"`
}

// DocumentResult represents the outcome of constructing a single document.
type DocumentResult struct {
	Index    int           `json:"index" yaml:"index"`
	Record   string        `json:"record" yaml:"record"`
	Status   Status        `json:"status" yaml:"status"`
	Rendered string        `json:"rendered,omitempty" yaml:"rendered,omitempty"`
	Kind     string        `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Duration time.Duration `json:"duration_ms" yaml:"duration_ms"`
}

// ResultSummary provides aggregate statistics about the run.
type ResultSummary struct {
	TotalDocuments  int `json:"total_documents" yaml:"total_documents"`
	PassedDocuments int `json:"passed_documents" yaml:"passed_documents"`
	FailedDocuments int `json:"failed_documents" yaml:"failed_documents"`
	ErrorDocuments  int `json:"error_documents" yaml:"error_documents"`
}

// NewRunResult creates a run result for a document batch.
func NewRunResult(schemaName, schemaVersion string, documents int) *RunResult {
	return &RunResult{
		RunID:         uuid.NewString(),
		SchemaName:    schemaName,
		SchemaVersion: schemaVersion,
		StartTime:     time.Now(),
		Documents:     make([]DocumentResult, documents),
	}
}

// Finalize completes the run result and calculates the summary.
func (r *RunResult) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.calculateSummary()
}

// HasFailures reports whether any document failed or errored.
func (r *RunResult) HasFailures() bool {
	return r.Summary.FailedDocuments > 0 || r.Summary.ErrorDocuments > 0
}

func (r *RunResult) calculateSummary() {
	r.Summary = ResultSummary{
		TotalDocuments: len(r.Documents),
	}

	for _, doc := range r.Documents {
		switch doc.Status {
		case StatusPass:
			r.Summary.PassedDocuments++
		case StatusFail:
			r.Summary.FailedDocuments++
		case StatusError:
			r.Summary.ErrorDocuments++
		}
	}
}
