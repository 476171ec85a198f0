package user

import (
	"database/sql"
	"time"
)

// User mirrors a row of the users table joined with its role name.
type User struct {
	UserID       int          `db:"user_id" json:"user_id"`
	Username     string       `db:"username" json:"username"`
	Email        string       `db:"email" json:"email"`
	PasswordHash string       `db:"password_hash" json:"-"` // never returned
	FullName     string       `db:"full_name" json:"full_name"`
	Phone        string       `db:"phone" json:"phone"`
	Role         string       `db:"role_name" json:"role"`
	IsActive     int          `db:"is_active" json:"is_active"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	LastLogin    sql.NullTime `db:"last_login" json:"-"`
}

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)
