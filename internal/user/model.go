package user

import "time"

// User represents a registered account holder.
type User struct {
	ID           string
	CPF          string
	Login        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile is the caller-visible projection of a user. The password hash and
// internal identifier are never exposed through it.
type Profile struct {
	Login string
	Name  string
}

// RegisterInput carries the fields required to onboard a new user.
type RegisterInput struct {
	CPF      string
	Login    string
	Name     string
	Password string
}
