package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// LoginRequest is the JSON body for the login endpoint.
// @Description User login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ops@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
} // @name LoginRequest

// RegisterRequest is the JSON body for the register endpoint.
// @Description New user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ops@example.com"`
	Username string `json:"username" binding:"required,min=3" example:"ops"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Name     string `json:"name" binding:"required" example:"Warehouse Ops"`
} // @name RegisterRequest

// RefreshRequest is the JSON body for the token refresh endpoint.
// @Description Refresh token exchange
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
} // @name RefreshRequest

// LogoutRequest is the JSON body for the logout endpoint.
// @Description Logout, invalidating both tokens
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
} // @name LogoutRequest

// TokenPair carries a newly issued access/refresh token pair.
// @Description JWT access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenPair

// Claims are the application claims embedded in issued JWTs.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}

// AuthResponse is the payload returned by login and register.
// @Description Token pair plus basic user info
type AuthResponse struct {
	Tokens TokenPair `json:"tokens"`
	Email  string    `json:"email" example:"ops@example.com"`
	Name   string    `json:"name" example:"Warehouse Ops"`
} // @name AuthResponse
