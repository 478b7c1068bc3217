package request_models

type AddBookmarkRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	TravelMode  string `json:"travelMode" binding:"required,travelmode"`
}

type RemoveBookmarkRequest struct {
	Title    string `json:"title" binding:"required"`
	Location string `json:"location" binding:"required"`
}
