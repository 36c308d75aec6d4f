// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's own queries will not match

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one embedded migration")
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			t.Errorf("unexpected embedded file %q", entry.Name())
		}
	}
}
