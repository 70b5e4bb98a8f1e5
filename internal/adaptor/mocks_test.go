package adaptor

import (
	"context"
	"net/http"
	"testing"

	"sendit/internal/dto/request"
	"sendit/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockAuthService struct {
	signupFn  func(ctx context.Context, req *request.SignupRequest) error
	loginFn   func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	refreshFn func(ctx context.Context, req *request.RefreshRequest) (*response.LoginResponse, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req *request.SignupRequest) error {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.LoginResponse, error) {
	return m.refreshFn(ctx, req)
}

type mockUserService struct {
	listFn    func(ctx context.Context) (response.ListResponse[response.UserResponse], error)
	createFn  func(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	getByIDFn func(ctx context.Context, id int64) (*response.UserResponse, error)
	updateFn  func(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockUserService) List(ctx context.Context) (response.ListResponse[response.UserResponse], error) {
	return m.listFn(ctx)
}

func (m *mockUserService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserService) Update(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockPinger struct {
	err error
}

func (m mockPinger) PingContext(context.Context) error { return m.err }

// withID attaches a chi {id} parameter the way the router would
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func nopLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zap.NewNop()
}
