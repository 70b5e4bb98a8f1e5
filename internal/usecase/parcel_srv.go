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

type ParcelService interface {
	List(ctx context.Context) (response.ListResponse[response.ParcelResponse], error)
	Create(ctx context.Context, req *request.CreateParcelRequest) (*response.ParcelResponse, error)
	GetByID(ctx context.Context, id int64) (*response.ParcelResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateParcelRequest) (*response.ParcelResponse, error)
	Delete(ctx context.Context, id int64) error
}

type parcelService struct {
	parcelRepo repository.ParcelRepository
	log        *zap.Logger
}

func NewParcelService(parcelRepo repository.ParcelRepository, log *zap.Logger) ParcelService {
	return &parcelService{
		parcelRepo: parcelRepo,
		log:        log.With(zap.String("service", "parcel")),
	}
}

func (s *parcelService) List(ctx context.Context) (response.ListResponse[response.ParcelResponse], error) {
	parcels, err := s.parcelRepo.FindAll(ctx)
	if err != nil {
		return response.ListResponse[response.ParcelResponse]{}, fmt.Errorf("list parcels: %w", err)
	}
	return response.ParcelsToResponse(parcels), nil
}

func (s *parcelService) Create(ctx context.Context, req *request.CreateParcelRequest) (*response.ParcelResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create parcel validation failed", zap.Error(err))
		return nil, err
	}

	parcel := &entity.Parcel{
		Description: req.Description,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		OrderID:     req.OrderID,
	}
	if err := s.parcelRepo.Create(ctx, parcel); err != nil {
		return nil, translate("create parcel", err)
	}

	s.log.Info("Parcel created", zap.Int64("parcel_id", parcel.ID), zap.Int64("order_id", parcel.OrderID))
	resp := response.ParcelToResponse(parcel)
	return &resp, nil
}

func (s *parcelService) GetByID(ctx context.Context, id int64) (*response.ParcelResponse, error) {
	parcel, err := s.parcelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel %d: %w", id, err)
	}
	if parcel == nil {
		s.log.Warn("Parcel not found", zap.Int64("parcel_id", id))
		return nil, fmt.Errorf("parcel %d: %w", id, ErrNotFound)
	}

	resp := response.ParcelToResponse(parcel)
	return &resp, nil
}

func (s *parcelService) Update(ctx context.Context, id int64, req *request.UpdateParcelRequest) (*response.ParcelResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update parcel validation failed", zap.Error(err), zap.Int64("parcel_id", id))
		return nil, err
	}

	parcel, err := s.parcelRepo.Update(ctx, id, entity.ParcelPatch{
		Description: req.Description,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		OrderID:     req.OrderID,
	})
	if err != nil {
		return nil, translate(fmt.Sprintf("update parcel %d", id), err)
	}

	resp := response.ParcelToResponse(parcel)
	return &resp, nil
}

func (s *parcelService) Delete(ctx context.Context, id int64) error {
	if err := s.parcelRepo.Delete(ctx, id); err != nil {
		return translate(fmt.Sprintf("delete parcel %d", id), err)
	}
	return nil
}
