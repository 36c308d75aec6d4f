package store

import (
	"context"
	"time"

	"github.com/elisee/account-service/models"
)

// AccountRepository is the persistence contract consumed by the account
// lifecycle service. Implementations own durability, email uniqueness, and
// the atomicity of token-consuming mutations.
type AccountRepository interface {
	// Create inserts a new unconfirmed account and returns it with the
	// server-assigned fields populated. A duplicate email yields
	// [ErrEmailAlreadyExists].
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// FindByEmail returns the account registered under the given
	// (normalized) email, or [ErrAccountNotFound].
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// FindByConfirmationToken returns the account carrying the given
	// outstanding confirmation token, or [ErrTokenNotFound]. The lookup
	// does not consume the token.
	FindByConfirmationToken(ctx context.Context, token string) (models.Account, error)

	// FindByResetToken returns the account carrying the given outstanding
	// reset token, or [ErrTokenNotFound]. The lookup does not consume
	// the token.
	FindByResetToken(ctx context.Context, token string) (models.Account, error)

	// ConsumeConfirmationToken enables the account carrying token and
	// clears the token in a single atomic statement. Tokens issued before
	// issuedAfter are treated as not found. Returns the updated account or
	// [ErrTokenNotFound].
	ConsumeConfirmationToken(ctx context.Context, token string, issuedAfter time.Time) (models.Account, error)

	// SetResetToken stores a fresh reset token on the account registered
	// under email, overwriting (and thereby invalidating) any outstanding
	// one. Returns the updated account or [ErrAccountNotFound].
	SetResetToken(ctx context.Context, email, token string, sentAt time.Time) (models.Account, error)

	// ConsumeResetToken replaces the password hash of the account carrying
	// token and clears the token in a single atomic statement. Tokens
	// issued before issuedAfter are treated as not found. Returns the
	// updated account or [ErrTokenNotFound].
	ConsumeResetToken(ctx context.Context, token, passwordHash string, issuedAfter time.Time) (models.Account, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
