package response

import (
	"time"

	"sendit/internal/data/entity"
)

type ParcelResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Weight      float64   `json:"weight"`
	Dimensions  string    `json:"dimensions"`
	OrderID     int64     `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ParcelToResponse(parcel *entity.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:          parcel.ID,
		Description: parcel.Description,
		Weight:      parcel.Weight,
		Dimensions:  parcel.Dimensions,
		OrderID:     parcel.OrderID,
		CreatedAt:   parcel.CreatedAt,
		UpdatedAt:   parcel.UpdatedAt,
	}
}

func ParcelsToResponse(parcels []*entity.Parcel) ListResponse[ParcelResponse] {
	return NewListResponse("parcels", mapList(parcels, ParcelToResponse))
}
