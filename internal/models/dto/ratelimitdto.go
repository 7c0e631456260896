package dto

type RateLimitResponse struct {
	Message string `json:"message"`
}

type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
