package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/services"
	"github.com/blogem/geoattend/userctx"
)

// multipartOverhead is allowed on top of the image for the other form fields
const multipartOverhead = 1 << 20

// AttendanceController handles admission and presence record requests
type AttendanceController struct {
	services *services.Services
	opts     Options
	log      *zap.Logger
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(services *services.Services, opts Options, log *zap.Logger) *AttendanceController {
	return &AttendanceController{
		services: services,
		opts:     opts,
		log:      log,
	}
}

// Submit handles POST /attendance
func (c *AttendanceController) Submit(w http.ResponseWriter, r *http.Request) {
	limit := c.opts.MaxImageBytes + multipartOverhead
	if r.ContentLength > limit {
		writeError(w, &services.Error{Kind: services.KindInvalidImage, Message: "upload is too large"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, &services.Error{Kind: services.KindInvalidImage, Message: "upload is too large"})
			return
		}
		c.log.Debug("failed to parse admission form", zap.Error(err))
		badRequest(w, "Failed to parse form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	image, err := readImage(r, c.opts.MaxImageBytes)
	if err != nil {
		c.log.Debug("failed to read admission image", zap.Error(err))
		badRequest(w, "Failed to read image: "+err.Error())
		return
	}

	result, err := c.services.Admission.Attempt(r.Context(), services.AdmissionAttempt{
		Name:     r.FormValue("name"),
		Image:    image,
		Location: parseLocation(r),
		Now:      timeNow(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// readImage returns the uploaded photo, reading at most one byte past the
// limit. A missing file yields no bytes; the admission decides what that means.
func readImage(r *http.Request, maxBytes int64) ([]byte, error) {
	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, maxBytes+1))
}

// parseLocation reads the geolocation fields of the admission form. Missing or
// malformed coordinates become NaN and a missing or malformed captured_at the
// zero time, so they are rejected at their own stage of the admission.
func parseLocation(r *http.Request) models.Location {
	loc := models.Location{
		Latitude:       parseFloatField(r, "latitude", math.NaN()),
		Longitude:      parseFloatField(r, "longitude", math.NaN()),
		AccuracyMeters: parseFloatField(r, "accuracy", 0),
	}

	if capturedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(r.FormValue("captured_at"))); err == nil {
		loc.CapturedAt = capturedAt
	}
	return loc
}

// parseFloatField returns missing for an empty field and NaN for a malformed one
func parseFloatField(r *http.Request, field string, missing float64) float64 {
	value := strings.TrimSpace(r.FormValue(field))
	if value == "" {
		return missing
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN()
	}
	return parsed
}

// List handles GET /attendance?date=YYYY-MM-DD
func (c *AttendanceController) List(w http.ResponseWriter, r *http.Request) {
	date := dateParam(r, c.opts.Location)

	records, err := c.services.Ledger.GetByDate(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []models.PresenceRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"records": records,
	})
}

// Update handles PATCH /attendance/{id}
func (c *AttendanceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badRequest(w, "Invalid presence record ID")
		return
	}

	var fields models.ReviewFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		badRequest(w, "Invalid JSON body: "+err.Error())
		return
	}

	record, err := c.services.Ledger.Update(r.Context(), id, fields, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Verify handles POST /attendance/{id}/verify
func (c *AttendanceController) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badRequest(w, "Invalid presence record ID")
		return
	}

	record, err := c.services.Ledger.Verify(r.Context(), id, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// History handles GET /attendance/{id}/history
func (c *AttendanceController) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badRequest(w, "Invalid presence record ID")
		return
	}

	entries, err := c.services.Ledger.History(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
