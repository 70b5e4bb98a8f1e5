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

type OrderService interface {
	List(ctx context.Context) (response.ListResponse[response.OrderResponse], error)
	Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetByID(ctx context.Context, id int64) (*response.OrderResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		log:       log.With(zap.String("service", "order")),
	}
}

func (s *orderService) List(ctx context.Context) (response.ListResponse[response.OrderResponse], error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return response.ListResponse[response.OrderResponse]{}, fmt.Errorf("list orders: %w", err)
	}
	return response.OrdersToResponse(orders), nil
}

func (s *orderService) Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create order validation failed", zap.Error(err))
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	order := &entity.Order{
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		Status:          status,
		UserID:          req.UserID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, translate("create order", err)
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.String("status", order.Status),
	)
	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*response.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if order == nil {
		s.log.Warn("Order not found", zap.Int64("order_id", id))
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Update(ctx context.Context, id int64, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update order validation failed", zap.Error(err), zap.Int64("order_id", id))
		return nil, err
	}

	order, err := s.orderRepo.Update(ctx, id, entity.OrderPatch{
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		Status:          req.Status,
		UserID:          req.UserID,
	})
	if err != nil {
		return nil, translate(fmt.Sprintf("update order %d", id), err)
	}

	s.log.Info("Order updated", zap.Int64("order_id", id), zap.String("status", order.Status))
	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return translate(fmt.Sprintf("delete order %d", id), err)
	}
	return nil
}
