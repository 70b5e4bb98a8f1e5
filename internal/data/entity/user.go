package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleCourier  UserRole = "courier"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Email        string   `db:"email"`
	Username     string   `db:"username"`
	Role         UserRole `db:"role"`
	PasswordHash string   `db:"password"`
}

// UserPatch holds the columns a PATCH may overwrite; nil means unchanged.
type UserPatch struct {
	Email        *string
	Username     *string
	Role         *UserRole
	PasswordHash *string
}
