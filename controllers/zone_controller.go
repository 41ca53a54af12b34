package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/services"
	"github.com/blogem/geoattend/userctx"
)

// ZoneController handles geofence zone requests
type ZoneController struct {
	services *services.Services
}

// NewZoneController creates a new zone controller
func NewZoneController(services *services.Services) *ZoneController {
	return &ZoneController{
		services: services,
	}
}

// List handles GET /zones
func (c *ZoneController) List(w http.ResponseWriter, r *http.Request) {
	zones, err := c.services.Zone.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if zones == nil {
		zones = []models.Zone{}
	}

	writeJSON(w, http.StatusOK, zones)
}

// Active handles GET /zones/active
func (c *ZoneController) Active(w http.ResponseWriter, r *http.Request) {
	zone, err := c.services.Zone.GetActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, zone)
}

// Create handles POST /zones
func (c *ZoneController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ZoneForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		badRequest(w, "Invalid JSON body: "+err.Error())
		return
	}

	zone, err := c.services.Zone.Create(r.Context(), &form, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, zone)
}

// Activate handles POST /zones/{id}/activate
func (c *ZoneController) Activate(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, c.services.Zone.Activate)
}

// Deactivate handles POST /zones/{id}/deactivate
func (c *ZoneController) Deactivate(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, c.services.Zone.Deactivate)
}

// Delete handles DELETE /zones/{id}
func (c *ZoneController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badRequest(w, "Invalid zone ID")
		return
	}

	if err := c.services.Zone.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// mutate applies a state change to the zone and responds with its new state
func (c *ZoneController) mutate(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id int) error) {
	id, ok := parseID(r)
	if !ok {
		badRequest(w, "Invalid zone ID")
		return
	}

	if err := apply(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	zone, err := c.services.Zone.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, zone)
}
