package service

import (
	"context"

	"github.com/elisee/account-service/internal/mailer"
	"github.com/elisee/account-service/models"
)

// AccountService owns the account lifecycle: registration with email
// confirmation, login, and password reset via one-time tokens.
type AccountService interface {
	// Register creates a new disabled account and queues a confirmation
	// email carrying a single-use token.
	Register(ctx context.Context, email, password string) (models.Account, error)

	// Confirm consumes an outstanding confirmation token and enables
	// the account it belongs to.
	Confirm(ctx context.Context, token string) (models.Account, error)

	// Login verifies the credentials of a confirmed account.
	Login(ctx context.Context, email, password string) (models.Account, error)

	// ForgotPassword issues a fresh reset token for a confirmed account
	// and queues a reset email. Any previously outstanding reset token
	// is invalidated.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes an outstanding reset token and replaces
	// the account's password.
	ResetPassword(ctx context.Context, token, newPassword string) (models.Account, error)
}

// AppInfoService exposes build metadata of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Notifier hands emails off for asynchronous delivery. Implementations
// must not block the caller; delivery failures are handled out of band.
type Notifier interface {
	Enqueue(email mailer.Email)
}
