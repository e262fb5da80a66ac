package request

// CreateUserRequest lists the signup fields the server reads. The rest of
// the body is stored unchanged.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=100"`
}
