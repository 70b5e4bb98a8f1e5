package request

type CreateProfileRequest struct {
	UserID         int64  `json:"user_id" validate:"required"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type UpdateProfileRequest struct {
	UserID         *int64  `json:"user_id,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
