package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

type User struct {
	Record
}

func (u User) Email() string {
	return u.Doc.String("email")
}

// Role is empty for regular users.
func (u User) Role() UserRole {
	return UserRole(u.Doc.String("role"))
}

func (u User) IsAdmin() bool {
	return u.Role() == RoleAdmin
}
