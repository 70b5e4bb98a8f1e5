package response

import (
	"time"

	"sendit/internal/data/entity"
)

type OrderResponse struct {
	ID              int64     `json:"id"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	Status          string    `json:"status"`
	UserID          int64     `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID,
		PickupAddress:   order.PickupAddress,
		DeliveryAddress: order.DeliveryAddress,
		Status:          order.Status,
		UserID:          order.UserID,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) ListResponse[OrderResponse] {
	return NewListResponse("orders", mapList(orders, OrderToResponse))
}
