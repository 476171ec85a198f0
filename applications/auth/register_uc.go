package auth

import (
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// RegisterParams is the registration payload for both account types.
type RegisterParams struct {
	FullName    string `json:"full_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"` // "customer" or "vendor"

	// Vendor-only fields.
	CompanyName     string `json:"company_name"`
	BusinessLicense string `json:"business_license"`
	ImageURL        string `json:"image_url"`
}

// Register creates a customer (active immediately) or a vendor (inactive
// until admin approval, with a pending vendor profile). The user row and the
// vendor profile are inserted in one transaction.
func Register(p RegisterParams) (string, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	if p.AccountType == "" {
		p.AccountType = "customer"
	}
	// Only customer and vendor accounts can self-register. Admin accounts
	// are provisioned directly in the database.
	if p.AccountType != "customer" && p.AccountType != "vendor" {
		return "", apperr.Invalid("Invalid account type")
	}

	if p.FullName == "" || p.Username == "" || p.Email == "" || p.Phone == "" || p.Password == "" {
		return "", apperr.Invalid("All fields are required")
	}
	if len(p.Password) < 6 {
		return "", apperr.Invalid("Password must be at least 6 characters")
	}

	var roleID int
	err := db.DB.Get(&roleID, `SELECT role_id FROM user_roles WHERE role_name = $1`, p.AccountType)
	if err != nil {
		return "", apperr.Invalid("Invalid account type")
	}

	var exists int
	err = db.DB.Get(&exists,
		`SELECT COUNT(*) FROM users WHERE username = $1 OR email = $2`, p.Username, p.Email)
	if err != nil {
		return "", fmt.Errorf("database query error: %w", err)
	}
	if exists > 0 {
		return "", apperr.Invalid("Username or email already exists")
	}

	isVendor := p.AccountType == "vendor"
	if isVendor {
		p.CompanyName = strings.TrimSpace(p.CompanyName)
		p.BusinessLicense = strings.TrimSpace(p.BusinessLicense)
		if p.CompanyName == "" || p.BusinessLicense == "" {
			return "", apperr.Invalid("Company name and business license are required for vendors")
		}
	}

	passwordHash, err := HashPassword(p.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	// Vendors need admin approval before they can log in.
	isActive := 1
	if isVendor {
		isActive = 0
	}

	tx, err := db.DB.Beginx()
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var userID int
	err = tx.QueryRow(`
		INSERT INTO users (username, email, password_hash, full_name, phone, role_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id`,
		p.Username, p.Email, passwordHash, p.FullName, p.Phone, roleID, isActive,
	).Scan(&userID)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[auth] Failed to insert new user %s: %v", p.Username, err))
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	if isVendor {
		var imageURL interface{}
		if p.ImageURL != "" {
			imageURL = p.ImageURL
		}
		_, err = tx.Exec(`
			INSERT INTO vendor_profiles (user_id, company_name, business_license,
				commission_rate, rating, verification_status, image_url)
			VALUES ($1, $2, $3, 10, 0, 'pending', $4)`,
			userID, p.CompanyName, p.BusinessLicense, imageURL)
		if err != nil {
			logger.Log.Error(fmt.Sprintf("[auth] Failed to insert vendor profile for user %d: %v", userID, err))
			return "", fmt.Errorf("failed to create vendor profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[auth] New %s account registered: %s (user %d).", p.AccountType, p.Username, userID))

	if isVendor {
		return "Vendor registration submitted! Your account will be activated after admin approval. You will receive an email notification.", nil
	}
	return "Registration successful! You can now login.", nil
}
