// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package models

import "time"

// Account represents a user account and its confirmation/reset lifecycle
// state. It is the only persisted entity of the service.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// ID is the internal unique identifier of the account, assigned by the
	// database at creation. It is immutable and not exposed via JSON.
	ID int64 `json:"-"`

	// Email is the unique address of the account holder. Emails are
	// normalized to lower case before any lookup or insert, and a unique
	// index on lower(email) enforces one account per address.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the current credential.
	// The raw password is never persisted or logged.
	PasswordHash string `json:"-"`

	// Enabled reports whether the account has completed email confirmation.
	// It is false from creation until Confirm succeeds and never reverts.
	Enabled bool `json:"-"`

	// ConfirmationToken is the single-use secret mailed at registration.
	// It is nil once consumed or for accounts created already confirmed
	// (no such path exists in this service).
	ConfirmationToken *string `json:"-"`

	// ConfirmationSentAt records when the confirmation token was issued.
	// Tokens older than the configured window are rejected.
	ConfirmationSentAt *time.Time `json:"-"`

	// ResetToken is the single-use secret authorizing one password change.
	// Each ForgotPassword request overwrites it, invalidating the previous
	// outstanding token. It is nil once consumed.
	ResetToken *string `json:"-"`

	// ResetSentAt records when the reset token was issued.
	ResetSentAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AwaitingConfirmation reports whether the account still has an outstanding
// confirmation token and has not been enabled yet.
func (a Account) AwaitingConfirmation() bool {
	return !a.Enabled && a.ConfirmationToken != nil
}
