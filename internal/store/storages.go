package store

import "github.com/elisee/account-service/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	Accounts AccountRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Accounts: NewAccountRepository(db, logger),
	}
}
