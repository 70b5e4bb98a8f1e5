package request

type CreateOrderRequest struct {
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
	Status          string `json:"status,omitempty"`
	UserID          int64  `json:"user_id" validate:"required"`
}

type UpdateOrderRequest struct {
	PickupAddress   *string `json:"pickup_address,omitempty"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`
	Status          *string `json:"status,omitempty"`
	UserID          *int64  `json:"user_id,omitempty"`
}
