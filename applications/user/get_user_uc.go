package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// LoginRow is everything the login flow needs in one fetch: the user record,
// its role name, and the vendor profile columns when one exists.
type LoginRow struct {
	User
	VendorID           sql.NullInt64  `db:"vendor_id"`
	VerificationStatus sql.NullString `db:"verification_status"`
}

// GetByUsername retrieves the login row for a username.
func GetByUsername(username string) (*LoginRow, error) {
	const selectSQL = `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.full_name, u.phone,
		       u.is_active, u.created_at, u.last_login, ur.role_name,
		       vp.vendor_id, vp.verification_status
		FROM users u
		JOIN user_roles ur ON u.role_id = ur.role_id
		LEFT JOIN vendor_profiles vp ON u.user_id = vp.user_id
		WHERE u.username = $1`

	row := &LoginRow{}
	if err := db.DB.Get(row, selectSQL, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warn(fmt.Sprintf("[user] Retrieval failed for %s: user not found.", username))
			return nil, apperr.ErrNotFound
		}
		logger.Log.Error(fmt.Sprintf("[user] Database query failed for %s: %v", username, err))
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return row, nil
}

// GetByID retrieves a user's profile fields by primary key.
func GetByID(userID int) (*User, error) {
	const selectSQL = `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.full_name, u.phone,
		       u.is_active, u.created_at, u.last_login, ur.role_name
		FROM users u
		JOIN user_roles ur ON u.role_id = ur.role_id
		WHERE u.user_id = $1`

	u := &User{}
	if err := db.DB.Get(u, selectSQL, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return u, nil
}
