package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CUSTOMER_SCAN_FAILED"
	Details string `json:"details,omitempty"` // Detailed error description (optional)
}

// Response is the envelope used when the error middleware writes an error
// directly, mirroring the shared HTTP response shape.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
