package request_models

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,strongpassword"`
	Nationality string `json:"nationality" binding:"required"`
	Gender      string `json:"gender" binding:"required,gender"`
	Age         int    `json:"age" binding:"required,min=1,max=120"`
	TravelMode  string `json:"travelMode" binding:"required,travelmode"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	FullName    *string `json:"fullName" binding:"omitempty,min=2,max=50"`
	Nationality *string `json:"nationality" binding:"omitempty,min=1"`
	Gender      *string `json:"gender" binding:"omitempty,gender"`
	Age         *int    `json:"age" binding:"omitempty,min=1,max=120"`
	TravelMode  *string `json:"travelMode" binding:"omitempty,travelmode"`
}

type UpdateTravelModeRequest struct {
	TravelMode string `json:"travelMode"`
}
