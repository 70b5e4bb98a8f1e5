package usecase

import (
	"context"
	"fmt"

	"sendit/internal/data/entity"
	"sendit/internal/data/repository"
	"sendit/internal/dto/request"
	"sendit/internal/dto/response"

	"go.uber.org/zap"
)

type ProfileService interface {
	List(ctx context.Context) (response.ListResponse[response.ProfileResponse], error)
	Create(ctx context.Context, req *request.CreateProfileRequest) (*response.ProfileResponse, error)
	GetByID(ctx context.Context, id int64) (*response.ProfileResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	Delete(ctx context.Context, id int64) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	log         *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, log *zap.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		log:         log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) List(ctx context.Context) (response.ListResponse[response.ProfileResponse], error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return response.ListResponse[response.ProfileResponse]{}, fmt.Errorf("list profiles: %w", err)
	}
	return response.ProfilesToResponse(profiles), nil
}

func (s *profileService) Create(ctx context.Context, req *request.CreateProfileRequest) (*response.ProfileResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:         req.UserID,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, translate("create profile", err)
	}

	s.log.Info("Profile created", zap.Int64("profile_id", profile.ID), zap.Int64("user_id", profile.UserID))
	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) GetByID(ctx context.Context, id int64) (*response.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %d: %w", id, ErrNotFound)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Update(ctx context.Context, id int64, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Update(ctx, id, entity.ProfilePatch{
		UserID:         req.UserID,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return nil, translate(fmt.Sprintf("update profile %d", id), err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Delete(ctx context.Context, id int64) error {
	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return translate(fmt.Sprintf("delete profile %d", id), err)
	}
	return nil
}
