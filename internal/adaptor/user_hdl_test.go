package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sendit/internal/dto/request"
	"sendit/internal/dto/response"
	"sendit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_List(t *testing.T) {
	svc := &mockUserService{
		listFn: func(context.Context) (response.ListResponse[response.UserResponse], error) {
			return response.NewListResponse("users", []response.UserResponse{{ID: 1, Username: "a"}}), nil
		},
	}
	h := NewUserHandler(svc, nopLogger(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
	assert.Contains(t, rec.Body.String(), `"users":[`)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	svc := &mockUserService{
		getByIDFn: func(_ context.Context, id int64) (*response.UserResponse, error) {
			return nil, fmt.Errorf("user %d: %w", id, usecase.ErrNotFound)
		},
	}
	h := NewUserHandler(svc, nopLogger(t))

	rec := httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/users/42", nil), "42"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeError(t, rec).Message)
}

func TestUserHandler_UnusableIDIsNotFound(t *testing.T) {
	h := NewUserHandler(&mockUserService{}, nopLogger(t))

	for _, id := range []string{"0", "99999999999999999999"} {
		rec := httptest.NewRecorder()
		h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/users/"+id, nil), id))
		require.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.Equal(t, "User not found", decodeError(t, rec).Message)

		rec = httptest.NewRecorder()
		h.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/users/"+id, nil), id))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestUserHandler_Update_UnknownField(t *testing.T) {
	h := NewUserHandler(&mockUserService{}, nopLogger(t))

	req := withID(httptest.NewRequest(http.MethodPatch, "/users/3", strings.NewReader(`{"id": 99}`)), "3")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown field")
}

func TestUserHandler_Update(t *testing.T) {
	svc := &mockUserService{
		updateFn: func(_ context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
			require.NotNil(t, req.Username)
			assert.Nil(t, req.Email)
			return &response.UserResponse{ID: id, Username: *req.Username}, nil
		},
	}
	h := NewUserHandler(svc, nopLogger(t))

	req := withID(httptest.NewRequest(http.MethodPatch, "/users/3", strings.NewReader(`{"username":"X"}`)), "3")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"X"`)
}

func TestUserHandler_Create_HidesPassword(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
			return &response.UserResponse{ID: 1, Email: req.Email, Username: req.Username}, nil
		},
	}
	h := NewUserHandler(svc, nopLogger(t))

	body := `{"email":"c@example.com","username":"carol","password":"hunter22"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter22")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &mockUserService{
		deleteFn: func(context.Context, int64) error { return nil },
	}
	h := NewUserHandler(svc, nopLogger(t))

	rec := httptest.NewRecorder()
	h.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/users/5", nil), "5"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted"}`, rec.Body.String())
}

func TestUserHandler_InvalidReference(t *testing.T) {
	svc := &mockUserService{
		createFn: func(context.Context, *request.CreateUserRequest) (*response.UserResponse, error) {
			return nil, fmt.Errorf("create: %w", usecase.ErrInvalidReference)
		},
	}
	h := NewUserHandler(svc, nopLogger(t))

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
