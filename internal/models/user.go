package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns uploaded rent roll documents.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
