package entity

// User is a registered customer account. The admin account is a preset
// credential pair from config, never a stored User record.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"` // stored plaintext, same as the storefront
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
