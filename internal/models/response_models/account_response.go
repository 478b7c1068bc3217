package response_models

import (
	"time"

	"ezyvoyage/internal/models/db_models"
)

type UserResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Nationality     string    `json:"nationality"`
	Gender          string    `json:"gender"`
	Age             int       `json:"age"`
	TravelMode      string    `json:"travelMode"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewUserResponse(u *db_models.User) UserResponse {
	return UserResponse{
		ID:              u.ID.String(),
		FullName:        u.FullName,
		Email:           u.Email,
		Nationality:     u.Nationality,
		Gender:          u.Gender,
		Age:             u.Age,
		TravelMode:      u.TravelMode,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedTime(),
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserStats struct {
	MemberSince     time.Time `json:"memberSince"`
	DaysSinceMember int       `json:"daysSinceMember"`
}
