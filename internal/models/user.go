package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account holder. PasswordHash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SignupForm struct {
	Name     string `form:"name"     json:"name"     validate:"required"`
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6,max_bytes=72"`
}

func (f *SignupForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
}

func (f *SignupForm) FieldMessages() map[string]string {
	return map[string]string{
		"name":               "Please enter your name.",
		"email":              "Please enter a valid email address.",
		"password":           "Password must be at least 6 characters.",
		"password.max_bytes": "Password must be at most 72 characters.",
	}
}

type Credentials struct {
	Email    string `form:"email"    json:"email"`
	Password string `form:"password" json:"password"`
}

// Normalize matches the email the way SignupForm stored it.
func (c *Credentials) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}
