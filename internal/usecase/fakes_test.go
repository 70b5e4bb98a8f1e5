package usecase

import (
	"context"

	"sendit/internal/data/entity"
	"sendit/pkg/utils"
)

// fakeUserRepo implements repository.UserRepository; unset fields panic when called.
type fakeUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id int64) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findAllFn     func(ctx context.Context) ([]*entity.User, error)
	updateFn      func(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return f.findAllFn(ctx)
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeOrderRepo struct {
	createFn   func(ctx context.Context, order *entity.Order) error
	findByIDFn func(ctx context.Context, id int64) (*entity.Order, error)
	findAllFn  func(ctx context.Context) ([]*entity.Order, error)
	updateFn   func(ctx context.Context, id int64, patch entity.OrderPatch) (*entity.Order, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return f.createFn(ctx, order)
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return f.findAllFn(ctx)
}

func (f *fakeOrderRepo) Update(ctx context.Context, id int64, patch entity.OrderPatch) (*entity.Order, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeParcelRepo struct {
	createFn func(ctx context.Context, parcel *entity.Parcel) error
	updateFn func(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error)
}

func (f *fakeParcelRepo) Create(ctx context.Context, parcel *entity.Parcel) error {
	return f.createFn(ctx, parcel)
}

func (f *fakeParcelRepo) FindByID(context.Context, int64) (*entity.Parcel, error) {
	panic("not used")
}

func (f *fakeParcelRepo) FindAll(context.Context) ([]*entity.Parcel, error) {
	panic("not used")
}

func (f *fakeParcelRepo) Update(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeParcelRepo) Delete(context.Context, int64) error {
	panic("not used")
}

type fakeTokens struct {
	issueFn func(userID int64) (*utils.TokenPair, error)
	parseFn func(tokenString string, expected utils.TokenType) (*utils.Claims, error)
}

func (f *fakeTokens) Issue(userID int64) (*utils.TokenPair, error) {
	return f.issueFn(userID)
}

func (f *fakeTokens) Parse(tokenString string, expected utils.TokenType) (*utils.Claims, error) {
	return f.parseFn(tokenString, expected)
}
