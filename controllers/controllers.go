package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/services"
)

var timeNow = func() time.Time { return time.Now() }

// Options configures request handling shared by the controllers
type Options struct {
	// Location is the timezone used to derive "today" for date queries
	Location *time.Location
	// MaxImageBytes bounds the size of an uploaded photo
	MaxImageBytes int64
}

// Controllers holds all controller instances
type Controllers struct {
	Attendance *AttendanceController
	Zone       *ZoneController
	Identity   *IdentityController
	Report     *ReportController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, opts Options, log *zap.Logger) *Controllers {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Controllers{
		Attendance: NewAttendanceController(services, opts, log),
		Zone:       NewZoneController(services),
		Identity:   NewIdentityController(services),
		Report:     NewReportController(services, opts),
	}
}

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error          string   `json:"error"`
	Message        string   `json:"message,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	RadiusMeters   *float64 `json:"radius_meters,omitempty"`
	ExistingTime   string   `json:"existing_time,omitempty"`
}

// writeJSON writes data as a JSON response with the status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps a service error to its HTTP status and JSON body
func writeError(w http.ResponseWriter, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   string(services.KindPersistenceFailure),
			Message: "internal error",
		})
		return
	}

	body := errorResponse{Error: string(svcErr.Kind), Message: svcErr.Message}
	switch svcErr.Kind {
	case services.KindOutOfRange:
		distance, radius := svcErr.Distance, svcErr.RadiusMeters
		body.DistanceMeters = &distance
		body.RadiusMeters = &radius
	case services.KindAlreadyRecorded:
		body.ExistingTime = svcErr.ExistingTime
	}

	writeJSON(w, statusFor(svcErr.Kind), body)
}

// statusFor returns the HTTP status of an error kind
func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindAlreadyRecorded, services.KindZoneActiveConstraint:
		return http.StatusConflict
	case services.KindNoActiveZone, services.KindPersistenceFailure:
		return http.StatusServiceUnavailable
	case services.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// badRequest writes an InvalidInput error
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: string(services.KindInvalidInput), Message: message})
}

// parseID reads the {id} URL parameter
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// dateParam reads ?date=YYYY-MM-DD, defaulting to today in loc
func dateParam(r *http.Request, loc *time.Location) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return models.FormatDate(timeNow().In(loc))
}
