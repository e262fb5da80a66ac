package request

// TokenRequest is the user payload exchanged for an access token.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}
