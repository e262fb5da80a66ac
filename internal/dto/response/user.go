package response

// CreateUserResponse is either a fresh insert or the duplicate marker
// {"message":"User already exists","insertedId":null}.
type CreateUserResponse struct {
	Message      string  `json:"message,omitempty"`
	Acknowledged bool    `json:"acknowledged,omitempty"`
	InsertedID   *string `json:"insertedId"`
}

const UserExistsMessage = "User already exists"

type AdminStatusResponse struct {
	Admin   bool   `json:"admin"`
	Message string `json:"message,omitempty"`
}
