package models

import "time"

// AuditEntry records one state-changing API call.
type AuditEntry struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email,omitempty"`
	Method    string    `json:"method"`
	Route     string    `json:"route"`
	URI       string    `json:"uri"`
	Status    int       `json:"status"`
	RemoteIP  string    `json:"remoteIp"`
	RequestID string    `json:"requestId,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
