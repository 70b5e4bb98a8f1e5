package entity

type Profile struct {
	Base
	UserID         int64  `db:"user_id"`
	Bio            string `db:"bio"`
	ProfilePicture string `db:"profile_picture"`
}

type ProfilePatch struct {
	UserID         *int64
	Bio            *string
	ProfilePicture *string
}
