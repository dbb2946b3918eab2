package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	brandapp "github.com/halobenaya/storefront/application/brand"
	categoryapp "github.com/halobenaya/storefront/application/category"
	locationapp "github.com/halobenaya/storefront/application/location"
	orderapp "github.com/halobenaya/storefront/application/order"
	productapp "github.com/halobenaya/storefront/application/product"
	userapp "github.com/halobenaya/storefront/application/user"
	"github.com/halobenaya/storefront/cmd/config"
	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	"github.com/halobenaya/storefront/utils/errors"
	validatorx "github.com/halobenaya/storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	BrandApp    brandapp.BrandApp
	CategoryApp categoryapp.CategoryApp
	LocationApp locationapp.LocationApp
	ProductApp  productapp.ProductApp
	OrderApp    orderapp.OrderApp
}

func NewTransport(cfg *config.Config, userApp userapp.UserApp, brandApp brandapp.BrandApp, categoryApp categoryapp.CategoryApp, locationApp locationapp.LocationApp, productApp productapp.ProductApp, orderApp orderapp.OrderApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     userApp,
		BrandApp:    brandApp,
		CategoryApp: categoryApp,
		LocationApp: locationApp,
		ProductApp:  productApp,
		OrderApp:    orderApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Brand
	mux.HandleFunc("/brand", rh.ListBrands).Methods(http.MethodGet)
	mux.HandleFunc("/brand/{id}", rh.GetBrand).Methods(http.MethodGet)
	mux.HandleFunc("/brand", rh.adminOnly(rh.CreateBrand)).Methods(http.MethodPost)
	mux.HandleFunc("/brand/{id}", rh.adminOnly(rh.UpdateBrand)).Methods(http.MethodPut)
	mux.HandleFunc("/brand/{id}", rh.adminOnly(rh.DeleteBrand)).Methods(http.MethodDelete)

	// Category
	mux.HandleFunc("/category", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/category/{id}", rh.GetCategory).Methods(http.MethodGet)
	mux.HandleFunc("/category", rh.adminOnly(rh.CreateCategory)).Methods(http.MethodPost)
	mux.HandleFunc("/category/{id}", rh.adminOnly(rh.UpdateCategory)).Methods(http.MethodPut)
	mux.HandleFunc("/category/{id}", rh.adminOnly(rh.DeleteCategory)).Methods(http.MethodDelete)

	// Location
	mux.HandleFunc("/location", rh.ListLocations).Methods(http.MethodGet)
	mux.HandleFunc("/location/{id}", rh.GetLocation).Methods(http.MethodGet)
	mux.HandleFunc("/location", rh.adminOnly(rh.CreateLocation)).Methods(http.MethodPost)
	mux.HandleFunc("/location/{id}", rh.adminOnly(rh.UpdateLocation)).Methods(http.MethodPut)
	mux.HandleFunc("/location/{id}", rh.adminOnly(rh.DeleteLocation)).Methods(http.MethodDelete)

	// Product
	mux.HandleFunc("/product", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/product/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/product", rh.adminOnly(rh.CreateProduct)).Methods(http.MethodPost)
	mux.HandleFunc("/product/{id}", rh.adminOnly(rh.UpdateProduct)).Methods(http.MethodPut)
	mux.HandleFunc("/product/{id}", rh.adminOnly(rh.DeleteProduct)).Methods(http.MethodDelete)

	// Order, /order/my-orders before /order/{id} so it matches first
	mux.HandleFunc("/order", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/order/my-orders", rh.ListMyOrders).Methods(http.MethodGet)
	mux.HandleFunc("/order/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/order", rh.adminOnly(rh.ListAllOrders)).Methods(http.MethodGet)
	mux.HandleFunc("/order/{id}/status", rh.adminOnly(rh.UpdateOrderStatus)).Methods(http.MethodPatch)

	// Internal routes, static API key instead of user tokens
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/order/{id}/expire", rh.ExpireOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(userApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
