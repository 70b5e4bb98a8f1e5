package entity

const OrderStatusPending = "pending"

type Order struct {
	Base
	PickupAddress   string `db:"pickup_address"`
	DeliveryAddress string `db:"delivery_address"`
	Status          string `db:"status"`
	UserID          int64  `db:"user_id"`
}

type OrderPatch struct {
	PickupAddress   *string
	DeliveryAddress *string
	Status          *string
	UserID          *int64
}
