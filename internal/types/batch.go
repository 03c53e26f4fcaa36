package types

// BatchStatus summarizes a whole batch submission.
type BatchStatus string

const (
	// BatchStatusSuccess means every row committed.
	BatchStatusSuccess BatchStatus = "success"
	// BatchStatusPartial means some rows committed and some failed.
	BatchStatusPartial BatchStatus = "partial"
	// BatchStatusFailure means no row committed.
	BatchStatusFailure BatchStatus = "failure"
)

// RowStatus is the outcome of a single row within a batch.
type RowStatus string

const (
	RowStatusSuccess RowStatus = "success"
	RowStatusFailed  RowStatus = "failed"
)

// RowResult is the per-row outcome of a batch submission. Index always maps
// back to the position of the row in the submitted batch.
type RowResult struct {
	// Index is the zero-based position of the row in the input batch.
	Index int `yaml:"index" json:"index"`
	// Status is the row outcome.
	Status RowStatus `yaml:"status" json:"status"`
	// TransactionID is the id assigned at commit. Empty for failed rows.
	TransactionID string `yaml:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	// Error is the failure reason. Empty for successful rows.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// BatchResult is the caller-facing outcome of one batch submission. It is
// constructed per call and never persisted.
type BatchResult struct {
	// OverallStatus is success, partial or failure.
	OverallStatus BatchStatus `yaml:"status" json:"status"`
	// Results holds the per-row outcomes in input order.
	Results []RowResult `yaml:"results" json:"results"`
}

// SucceededCount returns the number of rows that committed.
func (r *BatchResult) SucceededCount() int {
	count := 0

	for _, row := range r.Results {
		if row.Status == RowStatusSuccess {
			count++
		}
	}

	return count
}

// FailedCount returns the number of rows that did not commit.
func (r *BatchResult) FailedCount() int {
	return len(r.Results) - r.SucceededCount()
}

// DeriveStatus computes the overall status from the per-row results:
// success iff every row succeeded, failure iff every row failed, partial
// otherwise.
func (r *BatchResult) DeriveStatus() BatchStatus {
	succeeded := r.SucceededCount()

	switch succeeded {
	case len(r.Results):
		return BatchStatusSuccess
	case 0:
		return BatchStatusFailure
	default:
		return BatchStatusPartial
	}
}
