// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/elisee/account-service/internal/logger"
	"github.com/elisee/account-service/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, and the atomic
// token-consuming updates against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createAccount] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.Email, account.PasswordHash, account.ConfirmationToken, account.ConfirmationSentAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error: account insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanAccount(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindByEmail retrieves the account registered under the given email.
//
// Error handling:
//   - No matching row → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccountByEmail, email)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindByEmail").Msg("error: account lookup failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindByEmail").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindByConfirmationToken retrieves the account carrying the given
// outstanding confirmation token without consuming it.
func (r *accountRepository) FindByConfirmationToken(ctx context.Context, token string) (models.Account, error) {
	return r.findByToken(ctx, findAccountByConfirmationToken, token)
}

// FindByResetToken retrieves the account carrying the given outstanding
// reset token without consuming it.
func (r *accountRepository) FindByResetToken(ctx context.Context, token string) (models.Account, error) {
	return r.findByToken(ctx, findAccountByResetToken, token)
}

func (r *accountRepository) findByToken(ctx context.Context, query, token string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, token)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*accountRepository.findByToken").Msg("error: token lookup failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*accountRepository.findByToken").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ConsumeConfirmationToken enables the account carrying token and clears the
// token in one conditional UPDATE. Zero matched rows (the token is missing,
// already consumed, or was issued before issuedAfter) yield
// [ErrTokenNotFound]. The single statement is what serializes two concurrent
// confirmations of the same token: only one of them matches a row.
func (r *accountRepository) ConsumeConfirmationToken(ctx context.Context, token string, issuedAfter time.Time) (models.Account, error) {
	query, args, err := buildConsumeConfirmationToken(token, issuedAfter, time.Now())
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, query, args, ErrTokenNotFound)
}

// SetResetToken stores a fresh reset token on the account registered under
// email. Any outstanding reset token is overwritten and thereby invalidated.
func (r *accountRepository) SetResetToken(ctx context.Context, email, token string, sentAt time.Time) (models.Account, error) {
	query, args, err := buildSetResetToken(email, token, sentAt)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, query, args, ErrAccountNotFound)
}

// ConsumeResetToken replaces the password hash of the account carrying token
// and clears the token in one conditional UPDATE. Zero matched rows yield
// [ErrTokenNotFound], covering missing, consumed, and expired tokens alike.
func (r *accountRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string, issuedAfter time.Time) (models.Account, error) {
	query, args, err := buildConsumeResetToken(token, passwordHash, issuedAfter, time.Now())
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, query, args, ErrTokenNotFound)
}

// updateOne executes an UPDATE ... RETURNING statement expected to match at
// most one row and scans the result. notFound is returned when no row
// matched the WHERE clause.
func (r *accountRepository) updateOne(ctx context.Context, query string, args []any, notFound error) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, notFound
		}
		log.Err(err).Str("func", "*accountRepository.updateOne").Msg("error: account update failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, notFound
		}
		log.Err(err).Str("func", "*accountRepository.updateOne").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// scanAccount scans one row in [accountColumns] order.
func scanAccount(row *sql.Row) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Enabled,
		&account.ConfirmationToken,
		&account.ConfirmationSentAt,
		&account.ResetToken,
		&account.ResetSentAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}
