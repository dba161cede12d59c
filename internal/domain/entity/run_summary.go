package entity

// ResultStatus is the terminal outcome of one customer within a run.
type ResultStatus string

// Per-customer run outcomes. Customers that are skipped (no token) or not
// eligible never appear in the detail list.
const (
	ResultSent   ResultStatus = "SENT"
	ResultFailed ResultStatus = "FAILED"
)

// CustomerResult is one line of the run detail list.
type CustomerResult struct {
	CustomerID string       `json:"customer_id"`
	Status     ResultStatus `json:"status"`
	Reason     string       `json:"reason"` // Notification title on success, failure detail otherwise.
}

// RunSummary aggregates one expiry check run. It is ephemeral and returned
// to the caller; nothing in it is persisted.
type RunSummary struct {
	Message        string           `json:"message"`
	ProcessedCount int              `json:"processed_count"` // Customers scanned, including skipped ones.
	Sent           int              `json:"sent"`
	Failed         int              `json:"failed"`
	Details        []CustomerResult `json:"details"`
}
