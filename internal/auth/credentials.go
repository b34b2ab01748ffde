package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotConfigured is returned when no admin account has been set up.
	ErrNotConfigured = errors.New("admin account not configured")
)

var (
	adminMu           sync.RWMutex
	adminUsername     string
	adminPasswordHash []byte
)

// setAdmin stores the admin account. password may already be a bcrypt hash,
// in which case it is used as is.
func setAdmin(username, password string) error {
	if username == "" || password == "" {
		return errors.New("admin username and password are required")
	}

	hash := []byte(password)
	if _, err := bcrypt.Cost(hash); err != nil {
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
	}

	adminMu.Lock()
	defer adminMu.Unlock()
	adminUsername = username
	adminPasswordHash = hash
	return nil
}

// CheckCredentials verifies username and password against the admin account.
func CheckCredentials(username, password string) error {
	adminMu.RLock()
	defer adminMu.RUnlock()

	if adminPasswordHash == nil {
		return ErrNotConfigured
	}
	if username != adminUsername {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
