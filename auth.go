package cointrade

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials reports a login with a wrong password.
var ErrBadCredentials = errors.New("invalid credentials")

// CreateWallet provisions a wallet row: username, bcrypt password hash,
// fiat currency and the opening cash balance. It fails if the username is
// already taken.
func (s *Store) CreateWallet(ctx context.Context, user, password string, opening Money) error {
	if user == "" {
		return fmt.Errorf("username is required")
	}
	if opening.IsNegative() {
		return fmt.Errorf("opening balance must not be negative, got %s", opening)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO wallet (username, password_hash, currency, balance)
VALUES (?, ?, ?, ?)
`, user, string(hash), opening.Currency(), opening.Decimal().String())
	if err != nil {
		return storageErr("create wallet", err)
	}
	return nil
}

// Login verifies the user's password against the stored hash. It returns
// ErrUnknownWallet for a user that was never provisioned and
// ErrBadCredentials for a wrong password.
func (s *Store) Login(ctx context.Context, user, password string) error {
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM wallet WHERE username = ?`, user).Scan(&hash)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %q", ErrUnknownWallet, user)
	}
	if err != nil {
		return storageErr("read wallet", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}
