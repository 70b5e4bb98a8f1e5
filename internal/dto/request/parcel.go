package request

type CreateParcelRequest struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Dimensions  string  `json:"dimensions,omitempty"`
	OrderID     int64   `json:"order_id" validate:"required"`
}

type UpdateParcelRequest struct {
	Description *string  `json:"description,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Dimensions  *string  `json:"dimensions,omitempty"`
	OrderID     *int64   `json:"order_id,omitempty"`
}
