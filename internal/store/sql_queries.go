package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// accountColumns is the canonical column list scanned into models.Account.
// Keep in sync with scanAccount.
const accountColumns = `account_id, email, password_hash, enabled, confirmation_token, confirmation_sent_at, reset_token, reset_sent_at, created_at, updated_at`

const (
	createAccount = `INSERT INTO accounts (email, password_hash, confirmation_token, confirmation_sent_at)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + accountColumns + `;`

	findAccountByEmail = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE email = $1;`

	findAccountByConfirmationToken = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE confirmation_token = $1;`

	findAccountByResetToken = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE reset_token = $1;`
)

// psql is the statement builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildConsumeConfirmationToken returns the single-statement UPDATE that
// enables an account and clears its confirmation token. Matching on the
// token plus the issuance cutoff makes consumption atomic: of two concurrent
// calls with the same token, exactly one matches a row.
func buildConsumeConfirmationToken(token string, issuedAfter, now time.Time) (string, []any, error) {
	return psql.Update("accounts").
		Set("enabled", true).
		Set("confirmation_token", nil).
		Set("confirmation_sent_at", nil).
		Set("updated_at", now).
		Where(sq.Eq{"confirmation_token": token}).
		Where(sq.GtOrEq{"confirmation_sent_at": issuedAfter}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
}

// buildSetResetToken returns the UPDATE that stores a fresh reset token,
// overwriting any outstanding one for the same account.
func buildSetResetToken(email, token string, sentAt time.Time) (string, []any, error) {
	return psql.Update("accounts").
		Set("reset_token", token).
		Set("reset_sent_at", sentAt).
		Set("updated_at", sentAt).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
}

// buildConsumeResetToken returns the single-statement UPDATE that replaces
// the password hash and clears the reset token that authorized the change.
func buildConsumeResetToken(token, passwordHash string, issuedAfter, now time.Time) (string, []any, error) {
	return psql.Update("accounts").
		Set("password_hash", passwordHash).
		Set("reset_token", nil).
		Set("reset_sent_at", nil).
		Set("updated_at", now).
		Where(sq.Eq{"reset_token": token}).
		Where(sq.GtOrEq{"reset_sent_at": issuedAfter}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
}
