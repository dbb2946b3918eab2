package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/halobenaya/storefront/application/user"
	"github.com/halobenaya/storefront/cmd/config"
	"github.com/halobenaya/storefront/constant"
	redismocks "github.com/halobenaya/storefront/mocks/repository/redis"
	usermocks "github.com/halobenaya/storefront/mocks/repository/user"
	"github.com/halobenaya/storefront/model"
	cerr "github.com/halobenaya/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user as customer",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Test User" &&
							ent.Email == "test@example.com" &&
							ent.Role == constant.RoleCustomer &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "password123"
					})).
					Return(&model.UserEntity{
						ID:    1,
						Name:  "Test User",
						Email: "test@example.com",
						Role:  constant.RoleCustomer,
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				Name:  "Test User",
				Email: "test@example.com",
			},
		},
		{
			name: "error: email already exists",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "taken@example.com",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).
					Return(&model.UserEntity{ID: 2, Email: "taken@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already exists",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(&model.UserEntity{ID: 2, Phone: "081234567890"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repo failure",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Name != tt.want.Name || got.Email != tt.want.Email {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantRole string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login by email",
			req: &model.LoginRequest{
				Identifier: "test@example.com",
				Password:   "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Name:         "Test User",
						Email:        "test@example.com",
						PasswordHash: string(hashed),
						Role:         constant.RoleCustomer,
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			wantRole: constant.RoleCustomer,
		},
		{
			name: "success: login by phone",
			req: &model.LoginRequest{
				Identifier: "081234567890",
				Password:   "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(&model.UserEntity{
						ID:           3,
						Name:         "Admin",
						Email:        "admin@example.com",
						PasswordHash: string(hashed),
						Role:         constant.RoleSuperadmin,
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(3), time.Hour).
					Return(nil).
					Once()
			},
			wantRole: constant.RoleSuperadmin,
		},
		{
			name: "error: user not found",
			req: &model.LoginRequest{
				Identifier: "missing@example.com",
				Password:   "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "missing@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			req: &model.LoginRequest{
				Identifier: "test@example.com",
				Password:   "wrong-password",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "test@example.com",
						PasswordHash: string(hashed),
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
			if got.Role != tt.wantRole {
				t.Fatalf("Login() role = %s, want %s", got.Role, tt.wantRole)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	cfg := testConfig()

	signToken := func(t *testing.T, subject, role, jti, secret string) string {
		t.Helper()
		claims := jwt.MapClaims{
			"sub":  subject,
			"role": role,
			"jti":  jti,
			"exp":  time.Now().Add(time.Hour).Unix(),
			"iat":  time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return signed
	}

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		mockCall func(redisRepo *redismocks.Repository)
		want     *model.TokenClaims
		wantErr  bool
	}{
		{
			name: "success: valid token with live session",
			token: func(t *testing.T) string {
				return signToken(t, "1", constant.RoleCustomer, "jti-1", cfg.Auth.JWTSecret)
			},
			mockCall: func(redisRepo *redismocks.Repository) {
				redisRepo.On("GetSession", mock.Anything, "jti-1").Return(uint64(1), nil).Once()
			},
			want: &model.TokenClaims{UserID: 1, Role: constant.RoleCustomer},
		},
		{
			name: "error: wrong signing secret",
			token: func(t *testing.T) string {
				return signToken(t, "1", constant.RoleCustomer, "jti-1", "other-secret")
			},
			wantErr: true,
		},
		{
			name: "error: session user mismatch",
			token: func(t *testing.T) string {
				return signToken(t, "1", constant.RoleCustomer, "jti-1", cfg.Auth.JWTSecret)
			},
			mockCall: func(redisRepo *redismocks.Repository) {
				redisRepo.On("GetSession", mock.Anything, "jti-1").Return(uint64(2), nil).Once()
			},
			wantErr: true,
		},
		{
			name: "error: expired session",
			token: func(t *testing.T) string {
				return signToken(t, "1", constant.RoleCustomer, "jti-1", cfg.Auth.JWTSecret)
			},
			mockCall: func(redisRepo *redismocks.Repository) {
				redisRepo.On("GetSession", mock.Anything, "jti-1").Return(uint64(0), errors.New("redis: nil")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}
			app := appuser.NewUserApp(cfg, usermocks.NewUserRepository(t), redisRepo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.UserID != tt.want.UserID || got.Role != tt.want.Role {
				t.Fatalf("ValidateToken() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
