package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/applications/user"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// LoginParams for incoming credentials.
type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned to the controller on success.
type LoginResult struct {
	Token    string
	UserID   int
	Username string
	Email    string
	FullName string
	Role     string
	VendorID int
	Redirect string
}

var (
	// ErrInvalidCredentials maps to a 401 without revealing which part failed.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// Login verifies credentials, migrates legacy password hashes, enforces the
// activation and vendor-verification gates, stamps last_login, and issues a
// session token. A failed login never touches last_login.
func Login(p LoginParams) (*LoginResult, error) {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" || p.Password == "" {
		return nil, apperr.Invalid("Username and password required")
	}

	row, err := user.GetByUsername(p.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, needsRehash := VerifyPassword(row.PasswordHash, p.Password)
	if !ok {
		logger.Log.Warn(fmt.Sprintf("[auth] Login failed for %s: password mismatch.", p.Username))
		return nil, ErrInvalidCredentials
	}

	// Transparent upgrade of legacy SHA-256 digests to the secure form.
	// A migration failure is logged but never blocks the login.
	if needsRehash {
		if newHash, hashErr := HashPassword(p.Password); hashErr == nil {
			if _, upErr := db.DB.Exec(
				`UPDATE users SET password_hash = $1 WHERE user_id = $2`,
				newHash, row.UserID); upErr != nil {
				logger.Log.Error(fmt.Sprintf("[auth] Error migrating password for user %d: %v", row.UserID, upErr))
			} else {
				logger.Log.Info(fmt.Sprintf("[auth] Migrated legacy password hash for user %s.", row.Username))
			}
		}
	}

	if row.IsActive == 0 {
		if row.Role == user.RoleVendor {
			return nil, apperr.Forbidden("Your vendor account is pending admin approval. Please wait for activation email.")
		}
		return nil, apperr.Forbidden("Account is inactive")
	}

	if row.Role == user.RoleVendor && row.VerificationStatus.String != "verified" {
		return nil, apperr.Forbidden("Vendor account status: %s. Please contact admin.", row.VerificationStatus.String)
	}

	if _, err := db.DB.Exec(
		`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE user_id = $1`, row.UserID); err != nil {
		logger.Log.Error(fmt.Sprintf("[auth] Failed to stamp last_login for user %d: %v", row.UserID, err))
	}

	vendorID := int(row.VendorID.Int64)
	token, err := GenerateJWT(row.UserID, row.Username, row.Email, row.FullName, row.Role, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	redirect := "/index"
	if row.Role == user.RoleAdmin {
		redirect = "/admin"
	}

	logger.Log.Info(fmt.Sprintf("[auth] Login successful for %s (role %s).", row.Username, row.Role))
	return &LoginResult{
		Token:    token,
		UserID:   row.UserID,
		Username: row.Username,
		Email:    row.Email,
		FullName: row.FullName,
		Role:     row.Role,
		VendorID: vendorID,
		Redirect: redirect,
	}, nil
}
