package domain

import "time"

// User is the persisted account record. The email is the lookup key for
// login; the three status flags independently gate login eligibility.
type User struct {
	ID           string    `bson:"user_id" json:"user_id"`
	Username     string    `bson:"user_name" json:"user_name"`
	Email        string    `bson:"user_email" json:"user_email"`
	PhoneNumber  int64     `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	IsBlocked    bool      `bson:"is_blocked" json:"is_blocked"`
	IsDeleted    bool      `bson:"is_deleted" json:"is_deleted"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"-"`
}
