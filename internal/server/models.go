package server

import (
	"teamboard/internal/db"
	"teamboard/internal/errors"
)

// ErrorResponse represents an error response
type ErrorResponse = errors.HTTPErrorResponse

// HealthResponse is the dashboard's own liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// OKResponse acknowledges an operation
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// RegisterRequest represents a registration form
type RegisterRequest struct {
	Email    string  `json:"email" form:"email" validate:"required,email,max=255" example:"ana@uaemex.mx"`
	FullName *string `json:"full_name" form:"full_name" validate:"omitempty,max=255" example:"Ana Pérez"`
	Password string  `json:"password" form:"password" validate:"required" example:"s3cret"`
}

// LoginRequest represents a login form
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"ana@uaemex.mx"`
	Password string `json:"password" form:"password" validate:"required" example:"s3cret"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID       int64   `json:"id" example:"1"`
	Email    string  `json:"email" example:"ana@uaemex.mx"`
	FullName *string `json:"full_name" example:"Ana Pérez"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	OK   bool         `json:"ok" example:"true"`
	User UserResponse `json:"user"`
}

// ActivitiesResponse is a page of audit entries
type ActivitiesResponse = db.PaginatedResponse[*db.Activity]

func newUserResponse(u *db.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName}
}
