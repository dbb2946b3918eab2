package transport

import (
	"encoding/json"
	"net/http"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	"github.com/halobenaya/storefront/utils/errors"
)

// CreateCategory handler
// @Summary Create category (admin)
// @Tags Category
// @Accept json
// @Produce json
// @Param request body model.CategoryRequest true "Category"
// @Success 201 {object} model.CategoryEntity
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /category [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// UpdateCategory handler
// @Summary Update category (admin)
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body model.CategoryRequest true "New name"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /category/{id} [put]
func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteCategory handler
// @Summary Delete category (admin)
// @Description Refuses when products are still linked to the category
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} Response
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /category/{id} [delete]
func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CategoryApp.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListCategories handler
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Router /category [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCategory handler
// @Summary Get category by id
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} errors.CustomError
// @Router /category/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CategoryApp.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
