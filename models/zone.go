package models

import (
	"strings"
	"time"
)

// Zone represents a circular geofence that gates admission by proximity
type Zone struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description,omitempty" db:"description"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Longitude    float64   `json:"longitude" db:"longitude"`
	RadiusMeters float64   `json:"radius_meters" db:"radius_meters"`
	Active       bool      `json:"active" db:"active"`
	CreatedBy    string    `json:"created_by,omitempty" db:"created_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ZoneForm represents the administrator input for creating a zone
type ZoneForm struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	SetActive    bool    `json:"set_active"`
}

// Validate validates the zone form data
func (f *ZoneForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	errors = append(errors, ValidateGeometry(f.Latitude, f.Longitude, f.RadiusMeters)...)

	return errors
}

// ValidateGeometry checks coordinate ranges and radius of a zone
func ValidateGeometry(lat, lon, radius float64) []string {
	var errors []string

	// NaN fails every comparison, so test for the valid range rather than the invalid one
	if !(lat >= -90 && lat <= 90) {
		errors = append(errors, "Latitude must be between -90 and 90")
	}

	if !(lon >= -180 && lon <= 180) {
		errors = append(errors, "Longitude must be between -180 and 180")
	}

	if !(radius > 0) {
		errors = append(errors, "Radius must be greater than 0 meters")
	}

	return errors
}
