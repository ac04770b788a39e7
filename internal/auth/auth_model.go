package auth

import (
	"gorm.io/gorm"
)

// User is a scorer account. Rosters reference players, not users; a user is
// whoever operates the scoring console.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"john@example.com"` // email or username
	Password        string `json:"password" binding:"required" example:"password123"`
}
