package models

// Request bodies accepted by the HTTP layer. Field names follow the JSON
// contract of the public API.

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ConfirmEmailRequest is the body of POST /emailconfirmation. Token carries
// the URL-safe encoded confirmation token from the emailed link.
type ConfirmEmailRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// UpdateProfileRequest is the body of PUT /profil. Only the display name is
// mutable through the profile endpoint.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

// ForgetPasswordRequest is the body of POST /forgetpassword.
type ForgetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /resetpassword. Token carries the
// URL-safe encoded reset token from the emailed link.
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	Token string `json:"token"`
}

// AckResponse is a generic acknowledgement body.
type AckResponse struct {
	Message string `json:"message"`
}
