package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/elisee/account-service/internal/logger"
	"github.com/elisee/account-service/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRows(email string, enabled bool, confirmationToken, resetToken *string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows([]string{"account_id", "email", "password_hash", "enabled", "confirmation_token", "confirmation_sent_at", "reset_token", "reset_sent_at", "created_at", "updated_at"}).
		AddRow(1, email, "$2a$10$hash", enabled, confirmationToken, nullableTime(confirmationToken, now), resetToken, nullableTime(resetToken, now), now, now)
}

func nullableTime(token *string, t time.Time) *time.Time {
	if token == nil {
		return nil
	}
	return &t
}

func strPtr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	account := models.Account{
		Email:              "alice@example.com",
		PasswordHash:       "$2a$10$hash",
		ConfirmationToken:  strPtr("confirm-token"),
		ConfirmationSentAt: &now,
	}

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.Email, account.PasswordHash, account.ConfirmationToken, account.ConfirmationSentAt).
		WillReturnRows(accountRows(account.Email, false, account.ConfirmationToken, nil))

	created, err := repo.Create(ctx, account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Enabled {
		t.Error("expected created account to be disabled")
	}
	if created.ConfirmationToken == nil || *created.ConfirmationToken != "confirm-token" {
		t.Errorf("expected confirmation token to round-trip, got %v", created.ConfirmationToken)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(ctx, models.Account{Email: "alice@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(ctx, models.Account{Email: "alice@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreate_ScanError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"account_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnRows(rows)

	_, err := repo.Create(ctx, models.Account{Email: "alice@example.com"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestFindByEmail_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT account_id").
		WithArgs("alice@example.com").
		WillReturnRows(accountRows("alice@example.com", true, nil, nil))

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", found.Email)
	}
	if !found.Enabled {
		t.Error("expected enabled account")
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT account_id").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(ctx, "ghost@example.com")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestFindByConfirmationToken_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT account_id").
		WithArgs("missing-token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByConfirmationToken(context.Background(), "missing-token")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestFindByResetToken_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT account_id").
		WithArgs("reset-token").
		WillReturnRows(accountRows("alice@example.com", true, nil, strPtr("reset-token")))

	found, err := repo.FindByResetToken(context.Background(), "reset-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ResetToken == nil || *found.ResetToken != "reset-token" {
		t.Errorf("expected reset token to round-trip, got %v", found.ResetToken)
	}
}

func TestConsumeConfirmationToken_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	issuedAfter := time.Now().Add(-24 * time.Hour)

	mock.ExpectQuery("UPDATE accounts").
		WillReturnRows(accountRows("alice@example.com", true, nil, nil))

	updated, err := repo.ConsumeConfirmationToken(context.Background(), "confirm-token", issuedAfter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Enabled {
		t.Error("expected account to be enabled after confirmation")
	}
	if updated.ConfirmationToken != nil {
		t.Error("expected confirmation token to be cleared")
	}
}

func TestConsumeConfirmationToken_NoMatch(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ConsumeConfirmationToken(context.Background(), "stale-token", time.Now())
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestSetResetToken_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnRows(accountRows("alice@example.com", true, nil, strPtr("fresh-reset")))

	updated, err := repo.SetResetToken(context.Background(), "alice@example.com", "fresh-reset", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ResetToken == nil || *updated.ResetToken != "fresh-reset" {
		t.Errorf("expected fresh reset token, got %v", updated.ResetToken)
	}
}

func TestSetResetToken_AccountMissing(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SetResetToken(context.Background(), "ghost@example.com", "token", time.Now())
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestConsumeResetToken_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnRows(accountRows("alice@example.com", true, nil, nil))

	updated, err := repo.ConsumeResetToken(context.Background(), "reset-token", "$2a$10$newhash", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ResetToken != nil {
		t.Error("expected reset token to be cleared")
	}
}

func TestConsumeResetToken_NoMatch(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ConsumeResetToken(context.Background(), "superseded-token", "$2a$10$newhash", time.Now())
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestConsumeResetToken_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ConsumeResetToken(context.Background(), "token", "hash", time.Now())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
