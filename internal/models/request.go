package models

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required" example:"processing"`
	Notes  *string `json:"notes,omitempty"`
}

type RestoredImageRequest struct {
	URL string `json:"url" binding:"required,url" example:"https://cdn.example.com/restored.jpg"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
