package domain

// User is a directory entry used for attribution and avatars. Cards point at
// users by name, not id; the reference is weak and may fail to resolve.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Department string `json:"department"`
	Role       string `json:"role"`
	JoinDate   Date   `json:"joinDate"`
}
