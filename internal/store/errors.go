package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create an account
	// fails because an account with the same email already exists. It is the
	// translation of a PostgreSQL unique_violation and therefore the
	// authoritative guard against the register check-then-save race.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when a query expected to match exactly
	// one account record produces an empty result set.
	ErrAccountNotFound = errors.New("no account was found")

	// ErrTokenNotFound is returned when a conditional token-consuming update
	// matches zero rows: the token does not exist, was already consumed, or
	// was issued before the validity cutoff. The three cases are deliberately
	// indistinguishable.
	ErrTokenNotFound = errors.New("no account with such token was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan account row")
)
