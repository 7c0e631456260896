package dto

// LoginRequestDTO only requires both fields. Length rules belong to signup;
// a login that breaks them fails as invalid credentials.
type LoginRequestDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type LogoutResponseDTO struct {
	Message string `json:"message"`
}
