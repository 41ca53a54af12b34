package controllers

import (
	"net/http"

	"github.com/blogem/geoattend/services"
)

// ReportController handles statistics and summary requests
type ReportController struct {
	services *services.Services
	opts     Options
}

// NewReportController creates a new report controller
func NewReportController(services *services.Services, opts Options) *ReportController {
	return &ReportController{
		services: services,
		opts:     opts,
	}
}

// Stats handles GET /stats?date=YYYY-MM-DD
func (c *ReportController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.Stats.ForDate(r.Context(), dateParam(r, c.opts.Location))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Summary handles POST /summary?date=YYYY-MM-DD
func (c *ReportController) Summary(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.Summary.SendDaily(r.Context(), dateParam(r, c.opts.Location))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, stats)
}
