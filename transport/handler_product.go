package transport

import (
	"encoding/json"
	"net/http"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	"github.com/halobenaya/storefront/utils/errors"
	validatorx "github.com/halobenaya/storefront/utils/validator"
)

// CreateProduct handler
// @Summary Create product (admin)
// @Tags Product
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Product"
// @Success 201 {object} model.ProductEntity
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /product [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// UpdateProduct handler
// @Summary Update product (admin)
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.UpdateProductRequest true "Fields to update"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /product/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateProduct(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product (admin)
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /product/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListProducts handler
// @Summary List products
// @Tags Product
// @Produce json
// @Success 200 {array} model.ProductListItem
// @Router /product [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product by id
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} errors.CustomError
// @Router /product/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
