package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Username     string `json:"username" db:"username"`
	Name         string `json:"name" db:"name"`
	Phone        string `json:"phone" db:"phone"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

// UserTenant represents a row in the user_tenants membership table.
type UserTenant struct {
	UserID   string    `db:"user_id"`
	UserName string    `db:"user_name"`
	TenantID string    `db:"tenant_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
