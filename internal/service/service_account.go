// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elisee/account-service/internal/config"
	"github.com/elisee/account-service/internal/logger"
	"github.com/elisee/account-service/internal/mailer"
	"github.com/elisee/account-service/internal/store"
	"github.com/elisee/account-service/internal/utils"
	"github.com/elisee/account-service/models"
)

// accountService is the concrete implementation of AccountService.
// It orchestrates persistence through an AccountRepository, password hashing
// via bcrypt, and confirmation/reset email delivery through a Notifier.
type accountService struct {
	// accountRepository is the data-access layer for accounts.
	accountRepository store.AccountRepository

	// notifier queues lifecycle emails for asynchronous delivery.
	// Email failures never fail the originating operation.
	notifier Notifier

	// confirmationBaseURL and resetBaseURL are the link prefixes embedded
	// in outgoing emails; the token is appended as a query parameter.
	confirmationBaseURL string
	resetBaseURL        string

	// confirmationTTL and resetTTL bound how long an issued token remains
	// consumable. Expired tokens behave exactly like unknown ones.
	confirmationTTL time.Duration
	resetTTL        time.Duration

	// now is injectable for tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository and notifier, with link URLs and token lifetimes from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountRepository store.AccountRepository, cfg config.App, notifier Notifier, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository:   accountRepository,
		notifier:            notifier,
		confirmationBaseURL: cfg.ConfirmationBaseURL,
		resetBaseURL:        cfg.ResetBaseURL,
		confirmationTTL:     cfg.ConfirmationTokenTTL,
		resetTTL:            cfg.ResetTokenTTL,
		now:                 time.Now,
		logger:              logger,
	}
}

// Register creates a new account in the unconfirmed state.
//
// The email is normalized (trimmed, lower-cased) before persistence so that
// lookups are case-insensitive. The password is stored only as a bcrypt
// hash. A fresh confirmation token is generated and mailed; the account
// stays disabled until Confirm consumes that token.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if the email or password is empty or malformed.
//   - ErrEmailAlreadyInUse if an account already exists for the address.
func (a *accountService) Register(ctx context.Context, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if !validEmail(email) || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.Account{}, fmt.Errorf("error hashing password: %w", err)
	}

	token, err := utils.NewSecureToken()
	if err != nil {
		log.Err(err).Msg("error generating confirmation token")
		return models.Account{}, fmt.Errorf("error generating confirmation token: %w", err)
	}

	sentAt := a.now().UTC()
	account := models.Account{
		Email:              email,
		PasswordHash:       passwordHash,
		Enabled:            false,
		ConfirmationToken:  &token,
		ConfirmationSentAt: &sentAt,
	}

	created, err := a.accountRepository.Create(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Error().Str("email", email).Msg("email is already registered")
			return models.Account{}, ErrEmailAlreadyInUse
		}
		log.Err(err).Str("email", email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	a.notifier.Enqueue(a.confirmationEmail(created.Email, token))

	return created, nil
}

// Confirm enables the account carrying the given confirmation token.
//
// The token is consumed atomically: a second Confirm with the same token
// fails with ErrInvalidToken. Tokens older than the configured lifetime
// are rejected the same way.
func (a *accountService) Confirm(ctx context.Context, token string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		log.Error().Msg("empty confirmation token provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	issuedAfter := a.now().UTC().Add(-a.confirmationTTL)

	account, err := a.accountRepository.ConsumeConfirmationToken(ctx, token, issuedAfter)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			log.Error().Msg("unknown or expired confirmation token")
			return models.Account{}, ErrInvalidToken
		}
		log.Err(err).Msg("confirmation ended with error")
		return models.Account{}, fmt.Errorf("confirmation ended with error: %w", err)
	}

	log.Info().Int64("id", account.ID).Str("email", account.Email).Msg("account confirmed")

	return account, nil
}

// Login verifies the credentials of a confirmed account.
//
// Unknown emails yield ErrAccountNotFound and wrong passwords yield
// ErrInvalidCredentials; the HTTP layer reports both identically so callers
// cannot probe which addresses are registered. An unconfirmed account is
// rejected with ErrAccountNotConfirmed before the password is even
// compared, regardless of whether the password is correct.
func (a *accountService) Login(ctx context.Context, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Error().Str("email", email).Msg("login for unknown email")
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !account.Enabled {
		log.Error().Int64("id", account.ID).Msg("login on unconfirmed account")
		return models.Account{}, ErrAccountNotConfirmed
	}

	if err := utils.ComparePasswordAndHash(password, account.PasswordHash); err != nil {
		if errors.Is(err, utils.ErrMismatchedPasswordAndHash) {
			log.Error().Int64("id", account.ID).Msg("wrong password")
			return models.Account{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", account.ID).Msg("password comparison failed")
		return models.Account{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return account, nil
}

// ForgotPassword issues a new single-use reset token for the account
// registered under email and queues a reset email.
//
// Issuing a new token overwrites any outstanding one, so only the most
// recently mailed link works. Unconfirmed accounts cannot start a reset;
// they must confirm first.
func (a *accountService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		log.Error().Msg("empty email provided")
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Error().Str("email", email).Msg("password reset for unknown email")
			return ErrAccountNotFound
		}
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	if account.AwaitingConfirmation() {
		log.Error().Int64("id", account.ID).Msg("password reset on unconfirmed account")
		return ErrAccountNotConfirmed
	}

	token, err := utils.NewSecureToken()
	if err != nil {
		log.Err(err).Msg("error generating reset token")
		return fmt.Errorf("error generating reset token: %w", err)
	}

	if _, err := a.accountRepository.SetResetToken(ctx, email, token, a.now().UTC()); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Error().Str("email", email).Msg("account vanished before reset token was stored")
			return ErrAccountNotFound
		}
		log.Err(err).Str("email", email).Msg("storing reset token ended with error")
		return fmt.Errorf("storing reset token ended with error: %w", err)
	}

	a.notifier.Enqueue(a.resetEmail(account.Email, token))

	return nil
}

// ResetPassword consumes an outstanding reset token and replaces the
// password of the account carrying it.
//
// The token is consumed atomically together with the password change, so
// each mailed link authorizes exactly one reset. Expired or already-used
// tokens yield ErrInvalidToken.
func (a *accountService) ResetPassword(ctx context.Context, token, newPassword string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if token == "" || newPassword == "" {
		log.Error().Msg("invalid reset data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("error hashing new password")
		return models.Account{}, fmt.Errorf("error hashing new password: %w", err)
	}

	issuedAfter := a.now().UTC().Add(-a.resetTTL)

	account, err := a.accountRepository.ConsumeResetToken(ctx, token, passwordHash, issuedAfter)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			log.Error().Msg("unknown or expired reset token")
			return models.Account{}, ErrInvalidToken
		}
		log.Err(err).Msg("password reset ended with error")
		return models.Account{}, fmt.Errorf("password reset ended with error: %w", err)
	}

	log.Info().Int64("id", account.ID).Str("email", account.Email).Msg("password reset")

	return account, nil
}

func (a *accountService) confirmationEmail(to, token string) mailer.Email {
	link := a.confirmationBaseURL + "?token=" + token

	return mailer.Email{
		To:      to,
		Subject: "Confirm your account",
		HTML: "<p>Welcome! Please confirm your account by following the link below.</p>" +
			"<p><a href=\"" + link + "\">Confirm my account</a></p>",
	}
}

func (a *accountService) resetEmail(to, token string) mailer.Email {
	link := a.resetBaseURL + "?token=" + token

	return mailer.Email{
		To:      to,
		Subject: "Reset your password",
		HTML: "<p>A password reset was requested for your account. " +
			"Follow the link below to choose a new password.</p>" +
			"<p><a href=\"" + link + "\">Reset my password</a></p>" +
			"<p>If you did not request this, you can ignore this email.</p>",
	}
}

// normalizeEmail canonicalizes an address for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail applies a minimal structural check. Real validation happens
// implicitly: the confirmation email must reach the address.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
