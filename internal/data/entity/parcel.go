package entity

type Parcel struct {
	Base
	Description string  `db:"description"`
	Weight      float64 `db:"weight"`
	Dimensions  string  `db:"dimensions"`
	OrderID     int64   `db:"order_id"`
}

type ParcelPatch struct {
	Description *string
	Weight      *float64
	Dimensions  *string
	OrderID     *int64
}
