package transport

import (
	"encoding/json"
	"net/http"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	utilsContext "github.com/halobenaya/storefront/utils/context"
	"github.com/halobenaya/storefront/utils/errors"
)

// CreateOrder handler
// @Summary Place an order
// @Description Validate and price an order against the catalog, then persist it atomically
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.OrderRequest true "Order Request"
// @Success 201 {object} model.OrderResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /order [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok || userID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// field-level validation happens in the application layer so the error
	// can name the first offending field
	res, err := s.OrderApp.CreateOrder(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// ListMyOrders handler
// @Summary List own orders
// @Tags Order
// @Produce json
// @Success 200 {array} model.OrderResponse
// @Security BearerAuth
// @Router /order/my-orders [get]
func (s *RestHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok || userID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.OrderApp.ListMyOrders(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get one order
// @Description Customers may only read their own orders
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderResponse
// @Failure 403 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /order/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok || userID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	role, _ := utilsContext.GetUserRole(ctx)

	orderID, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, orderID, userID, role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListAllOrders handler
// @Summary List all orders (admin)
// @Tags Order
// @Produce json
// @Success 200 {array} model.OrderResponse
// @Security BearerAuth
// @Router /order [get]
func (s *RestHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.ListAllOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Update order status (admin)
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} model.OrderResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /order/{id}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.UpdateOrderStatus(ctx, orderID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireOrder marks a stale pending order failed; called by the expiration
// consumer through the internal API key route.
func (s *RestHandler) ExpireOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.ExpireOrder(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
