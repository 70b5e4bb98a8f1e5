package usecase

import (
	"context"
	"fmt"
	"testing"

	"sendit/internal/data/entity"
	"sendit/internal/data/repository"
	"sendit/internal/dto/request"
	"sendit/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := &fakeUserRepo{
		findByIDFn: func(context.Context, int64) (*entity.User, error) { return nil, nil },
	}
	svc := NewUserService(repo, zap.NewNop())

	user, err := svc.GetByID(context.Background(), 404)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := &fakeUserRepo{
		createFn: func(_ context.Context, u *entity.User) error {
			assert.True(t, utils.CheckPasswordHash("hunter22", u.PasswordHash))
			u.ID = 5
			return nil
		},
	}
	svc := NewUserService(repo, zap.NewNop())

	resp, err := svc.Create(context.Background(), &request.CreateUserRequest{
		Email: "c@example.com", Username: "carol", Password: "hunter22", Role: "courier",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, entity.RoleCourier, resp.Role)
}

func TestUserService_Update_OnlyUsername(t *testing.T) {
	repo := &fakeUserRepo{
		updateFn: func(_ context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
			require.NotNil(t, patch.Username)
			assert.Nil(t, patch.Email)
			assert.Nil(t, patch.Role)
			assert.Nil(t, patch.PasswordHash)
			return &entity.User{Base: entity.Base{ID: id}, Username: *patch.Username, Email: "same@example.com"}, nil
		},
	}
	svc := NewUserService(repo, zap.NewNop())

	resp, err := svc.Update(context.Background(), 3, &request.UpdateUserRequest{Username: ptr("Xavier")})
	require.NoError(t, err)
	assert.Equal(t, "Xavier", resp.Username)
	assert.Equal(t, "same@example.com", resp.Email)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := &fakeUserRepo{
		updateFn: func(_ context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
			require.NotNil(t, patch.PasswordHash)
			assert.NotEqual(t, "new-password", *patch.PasswordHash)
			assert.True(t, utils.CheckPasswordHash("new-password", *patch.PasswordHash))
			return &entity.User{Base: entity.Base{ID: id}}, nil
		},
	}
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.Update(context.Background(), 3, &request.UpdateUserRequest{Password: ptr("new-password")})
	require.NoError(t, err)
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, zap.NewNop())

	_, err := svc.Update(context.Background(), 3, &request.UpdateUserRequest{Role: ptr("superuser")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := &fakeUserRepo{
		deleteFn: func(context.Context, int64) error {
			return fmt.Errorf("delete user 9: %w", repository.ErrNotFound)
		},
	}
	svc := NewUserService(repo, zap.NewNop())

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrNotFound)
}

func TestOrderService_Create_DefaultsStatus(t *testing.T) {
	repo := &fakeOrderRepo{
		createFn: func(_ context.Context, o *entity.Order) error {
			o.ID = 11
			return nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	resp, err := svc.Create(context.Background(), &request.CreateOrderRequest{
		PickupAddress: "A", DeliveryAddress: "B", UserID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, int64(11), resp.ID)
}

func TestOrderService_Create_UnknownUser(t *testing.T) {
	repo := &fakeOrderRepo{
		createFn: func(context.Context, *entity.Order) error {
			return fmt.Errorf("create order: %w", repository.ErrInvalidReference)
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreateOrderRequest{
		PickupAddress: "A", DeliveryAddress: "B", UserID: 999,
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestOrderService_Create_MissingUserID(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreateOrderRequest{PickupAddress: "A", DeliveryAddress: "B"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderService_List(t *testing.T) {
	repo := &fakeOrderRepo{
		findAllFn: func(context.Context) ([]*entity.Order, error) {
			return []*entity.Order{{Base: entity.Base{ID: 1}}, {Base: entity.Base{ID: 2}}}, nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "orders", list.Key)
	assert.Len(t, list.Items, 2)
}

func TestParcelService_Update_PassesOnlyGivenFields(t *testing.T) {
	repo := &fakeParcelRepo{
		updateFn: func(_ context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error) {
			assert.Nil(t, patch.Description)
			assert.Nil(t, patch.OrderID)
			require.NotNil(t, patch.Weight)
			return &entity.Parcel{Base: entity.Base{ID: id}, Weight: *patch.Weight}, nil
		},
	}
	svc := NewParcelService(repo, zap.NewNop())

	resp, err := svc.Update(context.Background(), 2, &request.UpdateParcelRequest{Weight: ptr(1.25)})
	require.NoError(t, err)
	assert.Equal(t, 1.25, resp.Weight)
}

func TestParcelService_Create_OnlyOrderIDRequired(t *testing.T) {
	var stored *entity.Parcel
	repo := &fakeParcelRepo{
		createFn: func(_ context.Context, p *entity.Parcel) error {
			p.ID = 4
			stored = p
			return nil
		},
	}
	svc := NewParcelService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreateParcelRequest{Description: "box", Weight: 2})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, stored)

	resp, err := svc.Create(context.Background(), &request.CreateParcelRequest{OrderID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	assert.Zero(t, stored.Weight)
}
