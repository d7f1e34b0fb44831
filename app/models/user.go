package models

import "time"

type User struct {
	ID         string    `json:"id" validate:"required,uuid"`
	Username   string    `json:"username" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Password   string    `json:"-" validate:"required,min=8"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
