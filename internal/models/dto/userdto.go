package dto

// UserSignupRequestDTO is the registration form. Passwords are capped at 72
// bytes, the bcrypt input limit.
type UserSignupRequestDTO struct {
	Username        string `json:"username" validate:"required,min=3,max=64"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type UserSignupResponseDTO struct {
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}
