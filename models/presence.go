package models

import (
	"time"
)

// PresenceStatus is the reviewable state of a presence record
type PresenceStatus string

const (
	StatusPresent PresenceStatus = "Present"
	StatusAbsent  PresenceStatus = "Absent"
	StatusLate    PresenceStatus = "Late"
	StatusExcused PresenceStatus = "Excused"
)

// IsValid reports whether the status is one of the known values
func (s PresenceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// Location is a geolocation reading delivered by the client device
type Location struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	CapturedAt     time.Time `json:"captured_at"`
}

// PresenceRecord represents one admitted presence of an identity on a day
type PresenceRecord struct {
	ID             int            `json:"id" db:"id"`
	IdentityID     int            `json:"identity_id" db:"identity_id"`
	Date           string         `json:"date" db:"date"` // "2025-10-01" format
	Time           string         `json:"time" db:"time"` // "09:15:00" format
	Status         PresenceStatus `json:"status" db:"status"`
	Latitude       float64        `json:"latitude" db:"latitude"`
	Longitude      float64        `json:"longitude" db:"longitude"`
	DistanceMeters float64        `json:"distance_meters" db:"distance_meters"`
	ZoneID         *int           `json:"zone_id,omitempty" db:"zone_id"`
	AccuracyMeters float64        `json:"accuracy_meters" db:"accuracy_meters"`
	ImageReference string         `json:"image_reference" db:"image_reference"`
	Notes          string         `json:"notes,omitempty" db:"notes"`
	VerifiedBy     string         `json:"verified_by,omitempty" db:"verified_by"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`

	// Joined fields (populated from joins with identities and zones)
	IdentityName string `json:"identity_name,omitempty" db:"identity_name"`
	ZoneName     string `json:"zone_name,omitempty" db:"zone_name"`
}

// PresenceImage is the photo artifact submitted with an admission attempt
type PresenceImage struct {
	Reference   string
	ContentType string
	Data        []byte
}

// ReviewFields carries the reviewable fields of a presence record; nil means unchanged
type ReviewFields struct {
	Status     *PresenceStatus `json:"status,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	VerifiedBy *string         `json:"verified_by,omitempty"`
}

// IsEmpty reports whether no field is set
func (f ReviewFields) IsEmpty() bool {
	return f.Status == nil && f.Notes == nil && f.VerifiedBy == nil
}

// Validate validates the review form data
func (f ReviewFields) Validate() []string {
	var errors []string

	if f.IsEmpty() {
		errors = append(errors, "At least one of status, notes or verified_by is required")
	}

	if f.Status != nil && !f.Status.IsValid() {
		errors = append(errors, "Status must be one of Present, Absent, Late, Excused")
	}

	if f.Notes != nil && len(*f.Notes) > 1000 {
		errors = append(errors, "Notes must be less than 1000 characters")
	}

	if f.VerifiedBy != nil && len(*f.VerifiedBy) > 255 {
		errors = append(errors, "Verified by must be less than 255 characters")
	}

	return errors
}

// Apply copies every set field onto the record
func (f ReviewFields) Apply(p *PresenceRecord) {
	if f.Status != nil {
		p.Status = *f.Status
	}
	if f.Notes != nil {
		p.Notes = *f.Notes
	}
	if f.VerifiedBy != nil {
		p.VerifiedBy = *f.VerifiedBy
	}
}
