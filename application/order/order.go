package order

import (
	"context"
	crand "crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/halobenaya/storefront/cmd/config"
	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	orderrepo "github.com/halobenaya/storefront/repository/order"
	productrepo "github.com/halobenaya/storefront/repository/product"
	txrepo "github.com/halobenaya/storefront/repository/tx"
	userrepo "github.com/halobenaya/storefront/repository/user"
	"github.com/halobenaya/storefront/thirdparty/rabbitmq"
	"github.com/halobenaya/storefront/utils/errors"
	"github.com/halobenaya/storefront/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error)
	GetOrder(ctx context.Context, orderID, callerID uint64, role string) (*model.OrderResponse, error)
	ListMyOrders(ctx context.Context, userID uint64) ([]*model.OrderResponse, error)
	ListAllOrders(ctx context.Context) ([]*model.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) (*model.OrderResponse, error)
	ExpireOrder(ctx context.Context, orderID uint64) error
}

type orderAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	userRepo    userrepo.UserRepository
	publisher   *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		config:      config,
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	// distinct product ids, request order preserved
	seen := make(map[uint64]struct{}, len(req.Items))
	productIDs := make([]uint64, 0, len(req.Items))
	for _, item := range req.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}

	// batch price lookup; prices are copied here, so later catalog changes
	// do not touch existing orders
	found, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		logger.Error("[CreateOrder] get products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	prices := make(map[uint64]model.ProductPrice, len(found))
	for _, p := range found {
		prices[p.ID] = p
	}

	missing := make([]string, 0)
	for _, id := range productIDs {
		if _, ok := prices[id]; !ok {
			missing = append(missing, strconv.FormatUint(id, 10))
		}
	}
	if len(missing) > 0 {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "products not found: "+strings.Join(missing, ", "))
	}

	// integer arithmetic only; money is stored in whole currency units
	var total int64
	lines := make([]model.InsertOrderItemTx, 0, len(req.Items))
	for _, item := range req.Items {
		price := prices[item.ProductID].Price
		subTotal := price * int64(item.Quantity)
		total += subTotal
		lines = append(lines, model.InsertOrderItemTx{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			SubTotal:  subTotal,
		})
	}

	// Stock is not reserved or decremented here; availability is a catalog
	// flag, not a counter.
	var orderID uint64
	for attempt := 0; attempt < constant.OrderCodeMaxAttempts; attempt++ {
		code, err := generateOrderCode()
		if err != nil {
			logger.Error("[CreateOrder] generate code", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		orderID, err = s.persistOrder(ctx, userID, code, total, req.Detail, lines)
		if err == nil {
			break
		}
		if err == orderrepo.ErrDuplicateCode {
			logger.Warn("[CreateOrder] order code collision, regenerating", zap.String("code", code))
			orderID = 0
			continue
		}
		logger.Error("[CreateOrder] persist order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if orderID == 0 {
		return nil, errors.SetCustomErrorMsg(constant.ErrConflict, "could not allocate a unique order code")
	}

	resp, err := s.loadOrderResponse(ctx, orderID, false)
	if err != nil {
		logger.Error("[CreateOrder] load created order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Schedule expiration of the unpaid order; publish failures only log
	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			UserID:    userID,
			ExpiresAt: time.Now().Add(s.config.Order.OrderExpiration),
		}
		if err := s.publisher.PublishOrderExpiration(msg); err != nil {
			logger.Error("[CreateOrder] publish order expiration", zap.String("error", err.Error()))
		}
	}

	return resp, nil
}

// persistOrder writes order, detail and line items as one transaction
func (s *orderAppImpl) persistOrder(ctx context.Context, userID uint64, code string, total int64, detail *model.OrderDetailRequest, lines []model.InsertOrderItemTx) (uint64, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		UserID: userID,
		Code:   code,
		Total:  total,
		Status: constant.OrderStatusPending,
	})
	if err != nil {
		return 0, err
	}

	if err := s.orderRepo.InsertOrderDetailTx(ctx, tx, orderID, detail); err != nil {
		return 0, err
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, lines); err != nil {
		return 0, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return 0, err
	}
	committed = true
	return orderID, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID, callerID uint64, role string) (*model.OrderResponse, error) {
	entity, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "order not found")
	}

	// customers may only read their own orders
	if role != constant.RoleSuperadmin && entity.UserID != callerID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	return s.loadOrderResponse(ctx, orderID, role == constant.RoleSuperadmin)
}

func (s *orderAppImpl) ListMyOrders(ctx context.Context, userID uint64) ([]*model.OrderResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	orders, err := s.orderRepo.ListOrders(ctx, &orderrepo.OrderFilter{UserID: userID})
	if err != nil {
		logger.Error("[ListMyOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.assembleResponses(ctx, orders, false)
}

func (s *orderAppImpl) ListAllOrders(ctx context.Context) ([]*model.OrderResponse, error) {
	orders, err := s.orderRepo.ListOrders(ctx, &orderrepo.OrderFilter{})
	if err != nil {
		logger.Error("[ListAllOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.assembleResponses(ctx, orders, true)
}

func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) (*model.OrderResponse, error) {
	if !constant.OrderStatus(status).Valid() {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "invalid status value")
	}

	entity, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "order not found")
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		logger.Error("[UpdateOrderStatus] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.loadOrderResponse(ctx, orderID, true)
}

// ExpireOrder marks a stale pending order failed. Orders already settled by
// an admin are left alone, the late delivery is not an error.
func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID uint64) error {
	entity, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[ExpireOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomErrorMsg(constant.ErrNotFound, "order not found")
	}
	if entity.Status != constant.OrderStatusPending {
		return nil
	}

	changed, err := s.orderRepo.UpdateOrderStatusIf(ctx, orderID, string(constant.OrderStatusPending), string(constant.OrderStatusFailed))
	if err != nil {
		logger.Error("[ExpireOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if changed {
		logger.Info("[ExpireOrder] pending order expired", zap.Uint64("order_id", orderID))
	}
	return nil
}

func (s *orderAppImpl) loadOrderResponse(ctx context.Context, orderID uint64, withUser bool) (*model.OrderResponse, error) {
	entity, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "order not found")
	}
	return s.assembleResponse(ctx, entity, withUser)
}

func (s *orderAppImpl) assembleResponse(ctx context.Context, entity *model.OrderEntity, withUser bool) (*model.OrderResponse, error) {
	detail, err := s.orderRepo.GetOrderDetail(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.orderRepo.GetOrderItems(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	var summary *model.UserSummary
	if withUser {
		owner, err := s.userRepo.Get(ctx, &model.UserFilter{ID: entity.UserID})
		if err != nil {
			return nil, err
		}
		if owner != nil {
			summary = &model.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
		}
	}

	return model.NewOrderResponse(entity, detail, items, summary), nil
}

func (s *orderAppImpl) assembleResponses(ctx context.Context, orders []model.OrderEntity, withUser bool) ([]*model.OrderResponse, error) {
	responses := make([]*model.OrderResponse, 0, len(orders))
	for i := range orders {
		resp, err := s.assembleResponse(ctx, &orders[i], withUser)
		if err != nil {
			logger.Error("[ListOrders] assemble order", zap.Uint64("order_id", orders[i].ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// validateOrderRequest enforces the request shape, failing on the first
// violation with an error that names the offending field.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "items cannot be empty")
	}
	for _, item := range req.Items {
		if item.ProductID == 0 {
			return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "product_id must be a valid id")
		}
		if item.Quantity <= 0 {
			return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "quantity must be a positive number")
		}
	}
	if req.Detail == nil {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "order detail is required")
	}
	if strings.TrimSpace(req.Detail.Name) == "" {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "name is required")
	}
	if strings.TrimSpace(req.Detail.Phone) == "" {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "phone is required")
	}
	if strings.TrimSpace(req.Detail.Address) == "" {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "address is required")
	}
	if strings.TrimSpace(req.Detail.City) == "" {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "city is required")
	}
	if strings.TrimSpace(req.Detail.PostalCode) == "" {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "postal_code is required")
	}
	return nil
}

// generateOrderCode builds the human-facing code: prefix, unix millis and an
// 8-digit random suffix. Uniqueness is still enforced by the code column; on
// a collision the caller regenerates and retries.
func generateOrderCode() (string, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(90000000))
	if err != nil {
		return "", err
	}
	suffix := n.Int64() + 10000000
	return constant.OrderCodePrefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + strconv.FormatInt(suffix, 10), nil
}
