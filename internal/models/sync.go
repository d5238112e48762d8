package models

// SyncResult is the outcome of one call to the EBM API.
type SyncResult struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Status  int  `json:"status"`
	Error   any  `json:"error,omitempty"`
}
