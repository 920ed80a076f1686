package types

// UserResponse is the public projection of a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
