package models

import "time"

// User is an admin account. PasswordHash is never serialized to JSON.
type User struct {
	UserID       string    `json:"userid" bson:"userid"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Role         string    `json:"role" bson:"role"`
	LastLogin    time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
