package order_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apporder "github.com/halobenaya/storefront/application/order"
	"github.com/halobenaya/storefront/cmd/config"
	"github.com/halobenaya/storefront/constant"
	ordermocks "github.com/halobenaya/storefront/mocks/repository/order"
	productmocks "github.com/halobenaya/storefront/mocks/repository/product"
	txmocks "github.com/halobenaya/storefront/mocks/repository/tx"
	usermocks "github.com/halobenaya/storefront/mocks/repository/user"
	"github.com/halobenaya/storefront/model"
	orderrepo "github.com/halobenaya/storefront/repository/order"
	cerr "github.com/halobenaya/storefront/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// Note: order.go checks if publisher is nil before publishing, so tests can
// use a nil publisher without panicking.

func validDetail() *model.OrderDetailRequest {
	return &model.OrderDetailRequest{
		Name:       "Jane Buyer",
		Phone:      "080123456789",
		Address:    "Jl. Sudirman 1",
		City:       "Jakarta",
		PostalCode: "10110",
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		userRepo    *usermocks.UserRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.OrderRequest
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config: &config.Config{
				Order: config.OrderConfig{
					OrderExpiration: 30 * time.Minute,
				},
			},
			txRepo:      txmocks.NewTxRepository(t),
			orderRepo:   ordermocks.NewOrderRepository(t),
			productRepo: productmocks.NewProductRepository(t),
			userRepo:    usermocks.NewUserRepository(t),
		}
	}
	tests := []struct {
		name        string
		args        args
		mockCall    func(f fields)
		wantTotal   string
		wantErr     bool
		errCode     constant.ErrorType
		errContains string
	}{
		{
			name: "success: repriced total, single item",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items: []model.OrderItemRequest{
						{ProductID: 7, Quantity: 2},
					},
					Detail: validDetail(),
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []uint64{7}).Return([]model.ProductPrice{
					{ID: 7, Name: "Sneaker", Price: 15000},
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
					return req.UserID == 1 &&
						req.Total == 30000 &&
						req.Status == constant.OrderStatusPending &&
						strings.HasPrefix(req.Code, constant.OrderCodePrefix)
				})).Return(uint64(9), nil).Once()
				f.orderRepo.On("InsertOrderDetailTx", mock.Anything, tx, uint64(9), mock.Anything).Return(nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(9), []model.InsertOrderItemTx{
					{ProductID: 7, Quantity: 2, SubTotal: 30000},
				}).Return(nil).Once()

				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, UserID: 1, Code: "ID170001", Total: 30000, Status: constant.OrderStatusPending,
				}, nil).Once()
				f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(9)).Return(&model.OrderDetailEntity{OrderID: 9}, nil).Once()
				f.orderRepo.On("GetOrderItems", mock.Anything, uint64(9)).Return([]model.OrderItemEntity{
					{ID: 1, OrderID: 9, ProductID: 7, ProductName: "Sneaker", Quantity: 2, SubTotal: 30000},
				}, nil).Once()
			},
			wantTotal: "30000",
		},
		{
			name: "error: empty items",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.OrderRequest{Detail: validDetail()},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: zero quantity",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items:  []model.OrderItemRequest{{ProductID: 7, Quantity: 0}},
					Detail: validDetail(),
				},
			},
			wantErr:     true,
			errCode:     constant.ErrInvalidRequest,
			errContains: "quantity",
		},
		{
			name: "error: missing detail phone",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items: []model.OrderItemRequest{{ProductID: 7, Quantity: 1}},
					Detail: &model.OrderDetailRequest{
						Name: "Jane", Phone: "  ", Address: "Jl. Sudirman 1", City: "Jakarta", PostalCode: "10110",
					},
				},
			},
			wantErr:     true,
			errCode:     constant.ErrInvalidRequest,
			errContains: "phone",
		},
		{
			name: "error: unknown product, nothing persisted",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items: []model.OrderItemRequest{
						{ProductID: 7, Quantity: 1},
						{ProductID: 99, Quantity: 1},
					},
					Detail: validDetail(),
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []uint64{7, 99}).Return([]model.ProductPrice{
					{ID: 7, Name: "Sneaker", Price: 15000},
				}, nil).Once()
			},
			wantErr:     true,
			errCode:     constant.ErrNotFound,
			errContains: "99",
		},
		{
			name: "success: duplicate order code retried with fresh code",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items:  []model.OrderItemRequest{{ProductID: 7, Quantity: 1}},
					Detail: validDetail(),
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []uint64{7}).Return([]model.ProductPrice{
					{ID: 7, Name: "Sneaker", Price: 15000},
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(0), orderrepo.ErrDuplicateCode).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(9), nil).Once()
				f.orderRepo.On("InsertOrderDetailTx", mock.Anything, tx, uint64(9), mock.Anything).Return(nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(9), mock.Anything).Return(nil).Once()

				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, UserID: 1, Code: "ID170002", Total: 15000, Status: constant.OrderStatusPending,
				}, nil).Once()
				f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(9)).Return(&model.OrderDetailEntity{OrderID: 9}, nil).Once()
				f.orderRepo.On("GetOrderItems", mock.Anything, uint64(9)).Return([]model.OrderItemEntity{
					{ID: 1, OrderID: 9, ProductID: 7, Quantity: 1, SubTotal: 15000},
				}, nil).Once()
			},
			wantTotal: "15000",
		},
		{
			name: "error: code collisions exhaust the retry budget",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items:  []model.OrderItemRequest{{ProductID: 7, Quantity: 1}},
					Detail: validDetail(),
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []uint64{7}).Return([]model.ProductPrice{
					{ID: 7, Name: "Sneaker", Price: 15000},
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Times(constant.OrderCodeMaxAttempts)
				f.txRepo.On("RollbackTx", tx).Return(nil).Times(constant.OrderCodeMaxAttempts)
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(0), orderrepo.ErrDuplicateCode).Times(constant.OrderCodeMaxAttempts)
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: BeginTx returns error",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items:  []model.OrderItemRequest{{ProductID: 7, Quantity: 1}},
					Detail: validDetail(),
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []uint64{7}).Return([]model.ProductPrice{
					{ID: 7, Name: "Sneaker", Price: 15000},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: detail insert fails and the tx rolls back",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.OrderRequest{
					Items:  []model.OrderItemRequest{{ProductID: 7, Quantity: 1}},
					Detail: validDetail(),
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []uint64{7}).Return([]model.ProductPrice{
					{ID: 7, Name: "Sneaker", Price: 15000},
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(9), nil).Once()
				f.orderRepo.On("InsertOrderDetailTx", mock.Anything, tx, uint64(9), mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: unauthenticated caller",
			args: args{
				ctx:    context.Background(),
				userID: 0,
				req: &model.OrderRequest{
					Items:  []model.OrderItemRequest{{ProductID: 7, Quantity: 1}},
					Detail: validDetail(),
				},
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.config, f.txRepo, f.orderRepo, f.productRepo, f.userRepo, nil)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("error message = %q, want it to mention %q", err.Error(), tt.errContains)
				}
				return
			}

			if got.Total != tt.wantTotal {
				t.Fatalf("CreateOrder() Total = %s, want %s", got.Total, tt.wantTotal)
			}
			if got.Status != constant.OrderStatusPending {
				t.Fatalf("CreateOrder() Status = %s, want %s", got.Status, constant.OrderStatusPending)
			}
		})
	}
}

func TestOrderApp_CreateOrder_MultiItemTotal(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	orderRepo := ordermocks.NewOrderRepository(t)
	productRepo := productmocks.NewProductRepository(t)
	userRepo := usermocks.NewUserRepository(t)

	// client-supplied prices never reach the repo, the catalog price wins
	productRepo.On("GetByIDs", mock.Anything, []uint64{3, 5}).Return([]model.ProductPrice{
		{ID: 3, Name: "Shirt", Price: 120000},
		{ID: 5, Name: "Cap", Price: 45000},
	}, nil).Once()

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()

	orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
		return req.Total == 2*120000+3*45000
	})).Return(uint64(4), nil).Once()
	orderRepo.On("InsertOrderDetailTx", mock.Anything, tx, uint64(4), mock.Anything).Return(nil).Once()
	orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(4), []model.InsertOrderItemTx{
		{ProductID: 3, Quantity: 2, SubTotal: 240000},
		{ProductID: 5, Quantity: 3, SubTotal: 135000},
	}).Return(nil).Once()

	orderRepo.On("GetOrderByID", mock.Anything, uint64(4)).Return(&model.OrderEntity{
		ID: 4, UserID: 2, Code: "ID170003", Total: 375000, Status: constant.OrderStatusPending,
	}, nil).Once()
	orderRepo.On("GetOrderDetail", mock.Anything, uint64(4)).Return(&model.OrderDetailEntity{OrderID: 4}, nil).Once()
	orderRepo.On("GetOrderItems", mock.Anything, uint64(4)).Return([]model.OrderItemEntity{
		{ID: 1, OrderID: 4, ProductID: 3, Quantity: 2, SubTotal: 240000},
		{ID: 2, OrderID: 4, ProductID: 5, Quantity: 3, SubTotal: 135000},
	}, nil).Once()

	app := apporder.NewOrderApp(&config.Config{}, txRepo, orderRepo, productRepo, userRepo, nil)

	got, err := app.CreateOrder(context.Background(), 2, &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: 3, Quantity: 2},
			{ProductID: 5, Quantity: 3},
		},
		Detail: validDetail(),
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if got.Total != "375000" {
		t.Fatalf("CreateOrder() Total = %s, want 375000", got.Total)
	}
	if len(got.Items) != 2 {
		t.Fatalf("CreateOrder() items = %d, want 2", len(got.Items))
	}
	if got.Items[0].SubTotal != "240000" || got.Items[1].SubTotal != "135000" {
		t.Fatalf("CreateOrder() sub totals = %s, %s", got.Items[0].SubTotal, got.Items[1].SubTotal)
	}
}

func TestOrderApp_GetOrder(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
		userRepo  *usermocks.UserRepository
	}
	type args struct {
		orderID  uint64
		callerID uint64
		role     string
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantUser bool
	}{
		{
			name: "success: owner reads own order",
			args: args{orderID: 9, callerID: 1, role: constant.RoleCustomer},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, UserID: 1, Status: constant.OrderStatusPending,
				}, nil).Twice()
				f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(9)).Return(&model.OrderDetailEntity{OrderID: 9}, nil).Once()
				f.orderRepo.On("GetOrderItems", mock.Anything, uint64(9)).Return([]model.OrderItemEntity{}, nil).Once()
			},
		},
		{
			name: "success: superadmin reads any order with owner summary",
			args: args{orderID: 9, callerID: 8, role: constant.RoleSuperadmin},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, UserID: 1, Status: constant.OrderStatusPending,
				}, nil).Twice()
				f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(9)).Return(&model.OrderDetailEntity{OrderID: 9}, nil).Once()
				f.orderRepo.On("GetOrderItems", mock.Anything, uint64(9)).Return([]model.OrderItemEntity{}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
					ID: 1, Name: "Jane", Email: "jane@example.com",
				}, nil).Once()
			},
			wantUser: true,
		},
		{
			name: "error: customer reads someone else's order",
			args: args{orderID: 9, callerID: 2, role: constant.RoleCustomer},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, UserID: 1, Status: constant.OrderStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: order not found",
			args: args{orderID: 404, callerID: 1, role: constant.RoleCustomer},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(&config.Config{}, txmocks.NewTxRepository(t), f.orderRepo, productmocks.NewProductRepository(t), f.userRepo, nil)

			got, err := app.GetOrder(context.Background(), tt.args.orderID, tt.args.callerID, tt.args.role)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if (got.User != nil) != tt.wantUser {
				t.Fatalf("GetOrder() user summary = %v, want present %v", got.User, tt.wantUser)
			}
		})
	}
}

func TestOrderApp_UpdateOrderStatus(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
		userRepo  *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		orderID  uint64
		status   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: mark order success",
			orderID: 9,
			status:  "success",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, UserID: 1, Status: constant.OrderStatusPending,
				}, nil).Twice()
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(9), "success").Return(nil).Once()
				f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(9)).Return(&model.OrderDetailEntity{OrderID: 9}, nil).Once()
				f.orderRepo.On("GetOrderItems", mock.Anything, uint64(9)).Return([]model.OrderItemEntity{}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1}, nil).Once()
			},
		},
		{
			name:    "error: unknown status value",
			orderID: 9,
			status:  "shipped",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: order not found",
			orderID: 404,
			status:  "failed",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(&config.Config{}, txmocks.NewTxRepository(t), f.orderRepo, productmocks.NewProductRepository(t), f.userRepo, nil)

			_, err := app.UpdateOrderStatus(context.Background(), tt.orderID, tt.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateOrderStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestOrderApp_ExpireOrder(t *testing.T) {
	tests := []struct {
		name     string
		orderID  uint64
		mockCall func(orderRepo *ordermocks.OrderRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: pending order marked failed",
			orderID: 9,
			mockCall: func(orderRepo *ordermocks.OrderRepository) {
				orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, Status: constant.OrderStatusPending,
				}, nil).Once()
				orderRepo.On("UpdateOrderStatusIf", mock.Anything, uint64(9), "pending", "failed").Return(true, nil).Once()
			},
		},
		{
			name:    "success: settled order is left alone",
			orderID: 9,
			mockCall: func(orderRepo *ordermocks.OrderRepository) {
				orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, Status: constant.OrderStatusSuccess,
				}, nil).Once()
			},
		},
		{
			name:    "success: lost the status race, still no error",
			orderID: 9,
			mockCall: func(orderRepo *ordermocks.OrderRepository) {
				orderRepo.On("GetOrderByID", mock.Anything, uint64(9)).Return(&model.OrderEntity{
					ID: 9, Status: constant.OrderStatusPending,
				}, nil).Once()
				orderRepo.On("UpdateOrderStatusIf", mock.Anything, uint64(9), "pending", "failed").Return(false, nil).Once()
			},
		},
		{
			name:    "error: order not found",
			orderID: 404,
			mockCall: func(orderRepo *ordermocks.OrderRepository) {
				orderRepo.On("GetOrderByID", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := ordermocks.NewOrderRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(orderRepo)
			}
			app := apporder.NewOrderApp(&config.Config{}, txmocks.NewTxRepository(t), orderRepo, productmocks.NewProductRepository(t), usermocks.NewUserRepository(t), nil)

			err := app.ExpireOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpireOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
