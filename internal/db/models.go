package db

import "time"

// User is a registered dashboard user
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     *string   `json:"full_name" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName is the full name when set, else the email
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}

// Activity is one audit trail entry written after a request
type Activity struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id" db:"user_id"`
	Path      string    `json:"path" db:"path"`
	Method    string    `json:"method" db:"method"`
	UserAgent *string   `json:"user_agent" db:"user_agent"`
	RemoteIP  *string   `json:"remote_ip" db:"remote_ip"`
	Detail    *string   `json:"detail" db:"detail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
