package usecase

import (
	"context"
	"fmt"

	"sendit/internal/data/entity"
	"sendit/internal/data/repository"
	"sendit/internal/dto/request"
	"sendit/internal/dto/response"
	"sendit/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) (response.ListResponse[response.UserResponse], error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*response.UserResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) List(ctx context.Context) (response.ListResponse[response.UserResponse], error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return response.ListResponse[response.UserResponse]{}, fmt.Errorf("list users: %w", err)
	}
	return response.UsersToResponse(users), nil
}

// Create stores a user with a hashed password, same as signup
func (us *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		us.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleCustomer
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		Email:        req.Email,
		Username:     req.Username,
		Role:         role,
		PasswordHash: hashedPassword,
	}
	if err := us.userRepo.Create(ctx, user); err != nil {
		return nil, translate("create user", err)
	}

	us.log.Info("New user created", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		us.log.Warn("User not found", zap.Int64("user_id", id))
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Update(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		us.log.Warn("Update user validation failed", zap.Error(err), zap.Int64("user_id", id))
		return nil, err
	}

	patch := entity.UserPatch{
		Email:    req.Email,
		Username: req.Username,
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		patch.Role = &role
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hashedPassword
	}

	user, err := us.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, translate(fmt.Sprintf("update user %d", id), err)
	}

	us.log.Info("User updated", zap.Int64("user_id", id))
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Delete(ctx context.Context, id int64) error {
	if err := us.userRepo.Delete(ctx, id); err != nil {
		return translate(fmt.Sprintf("delete user %d", id), err)
	}
	return nil
}
