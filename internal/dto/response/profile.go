package response

import (
	"time"

	"sendit/internal/data/entity"
)

type ProfileResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		Bio:            profile.Bio,
		ProfilePicture: profile.ProfilePicture,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

func ProfilesToResponse(profiles []*entity.Profile) ListResponse[ProfileResponse] {
	return NewListResponse("profiles", mapList(profiles, ProfileToResponse))
}
