package transport

import (
	"encoding/json"
	"net/http"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	"github.com/halobenaya/storefront/utils/errors"
)

// CreateBrand handler
// @Summary Create brand (admin)
// @Tags Brand
// @Accept json
// @Produce json
// @Param request body model.CreateBrandRequest true "Brand"
// @Success 201 {object} model.BrandEntity
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /brand [post]
func (s *RestHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BrandApp.CreateBrand(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// UpdateBrand handler
// @Summary Update brand (admin)
// @Tags Brand
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param request body model.UpdateBrandRequest true "Fields to update"
// @Success 200 {object} model.BrandEntity
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /brand/{id} [put]
func (s *RestHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BrandApp.UpdateBrand(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteBrand handler
// @Summary Delete brand (admin)
// @Description Refuses when products are still linked to the brand
// @Tags Brand
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} Response
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /brand/{id} [delete]
func (s *RestHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.BrandApp.DeleteBrand(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListBrands handler
// @Summary List brands
// @Tags Brand
// @Produce json
// @Success 200 {array} model.BrandEntity
// @Router /brand [get]
func (s *RestHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	res, err := s.BrandApp.ListBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetBrand handler
// @Summary Get brand by id
// @Tags Brand
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} model.BrandEntity
// @Failure 404 {object} errors.CustomError
// @Router /brand/{id} [get]
func (s *RestHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BrandApp.GetBrand(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
