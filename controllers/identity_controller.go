package controllers

import (
	"net/http"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/services"
)

// IdentityController handles roster requests
type IdentityController struct {
	services *services.Services
}

// NewIdentityController creates a new identity controller
func NewIdentityController(services *services.Services) *IdentityController {
	return &IdentityController{
		services: services,
	}
}

// List handles GET /identities
func (c *IdentityController) List(w http.ResponseWriter, r *http.Request) {
	identities, err := c.services.Identity.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if identities == nil {
		identities = []models.Identity{}
	}

	writeJSON(w, http.StatusOK, identities)
}

// Deactivate handles POST /identities/{id}/deactivate
func (c *IdentityController) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badRequest(w, "Invalid identity ID")
		return
	}

	if err := c.services.Identity.Deactivate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
