package models

// Stats represents attendance figures for a single day
type Stats struct {
	Date    string  `json:"date"`
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Rate    float64 `json:"rate"`
}

// NewStats derives absent and rate from the total and present counts
func NewStats(date string, total, present int) Stats {
	stats := Stats{Date: date, Total: total, Present: present}
	stats.Absent = total - present
	if total > 0 {
		stats.Rate = float64(present) / float64(total) * 100
	}
	return stats
}

// AdmissionResult is returned for a committed presence record
type AdmissionResult struct {
	RecordID       int     `json:"record_id"`
	IdentityID     int     `json:"identity_id"`
	IdentityName   string  `json:"identity_name"`
	ZoneID         int     `json:"zone_id"`
	ZoneName       string  `json:"zone_name"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	DistanceMeters float64 `json:"distance_meters"`
}
