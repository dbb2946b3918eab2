package transport

import (
	"encoding/json"
	"net/http"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	"github.com/halobenaya/storefront/utils/errors"
)

// CreateLocation handler
// @Summary Create location (admin)
// @Tags Location
// @Accept json
// @Produce json
// @Param request body model.LocationRequest true "Location"
// @Success 201 {object} model.LocationEntity
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /location [post]
func (s *RestHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req model.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LocationApp.CreateLocation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// UpdateLocation handler
// @Summary Update location (admin)
// @Tags Location
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param request body model.LocationRequest true "New name"
// @Success 200 {object} model.LocationEntity
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /location/{id} [put]
func (s *RestHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LocationApp.UpdateLocation(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteLocation handler
// @Summary Delete location (admin)
// @Tags Location
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} Response
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /location/{id} [delete]
func (s *RestHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.LocationApp.DeleteLocation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListLocations handler
// @Summary List locations
// @Tags Location
// @Produce json
// @Success 200 {array} model.LocationEntity
// @Router /location [get]
func (s *RestHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	res, err := s.LocationApp.ListLocations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetLocation handler
// @Summary Get location by id
// @Tags Location
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} model.LocationEntity
// @Failure 404 {object} errors.CustomError
// @Router /location/{id} [get]
func (s *RestHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LocationApp.GetLocation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
