package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RegisterRequest represents user registration data
// @Description Email and password for a new account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"u@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// LoginRequest represents user login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"u@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string `json:"token_type" example:"bearer"`
}
