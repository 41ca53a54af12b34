package models

import "time"

// AuditAction is the kind of change an audit entry records
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditVerify AuditAction = "VERIFY"
)

// AuditEntry represents a single append-only change to a presence record.
// OldValues and NewValues hold JSON objects of the affected fields.
type AuditEntry struct {
	ID               int64       `json:"id"`
	PresenceRecordID int         `json:"presence_record_id"`
	Action           AuditAction `json:"action"`
	OldValues        string      `json:"old_values,omitempty"`
	NewValues        string      `json:"new_values,omitempty"`
	Actor            string      `json:"actor"`
	Timestamp        time.Time   `json:"timestamp"`
}

// SystemActor is recorded for changes made by the admission pipeline itself
const SystemActor = "system"
