package domain

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User models an account in the user directory. Accounts are provisioned
// at startup; there is no self-registration endpoint.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Principal is the authenticated identity the authentication middleware
// attaches to a request.
type Principal struct {
	Username   string
	Role       string
	RemoteAddr string
}
