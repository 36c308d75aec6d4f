// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergePriority(t *testing.T) {
	// env source wins over a later source for the same non-zero field
	envCfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://from-env"}}}
	jsonCfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://from-json"}},
		App: App{
			ConfirmationBaseURL: "https://example.com/api/auth/confirm",
			ResetBaseURL:        "https://example.com/reset-password",
		},
		Mail: Mail{Host: "smtp.example.com", From: "noreply@example.com"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, envCfg, jsonCfg)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://from-env", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://example.com/api/auth/confirm", cfg.App.ConfirmationBaseURL)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/accounts"}},
		App: App{
			ConfirmationBaseURL: "https://example.com/api/auth/confirm",
			ResetBaseURL:        "https://example.com/reset-password",
		},
		Mail: Mail{Host: "smtp.example.com", From: "noreply@example.com"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.App.ConfirmationTokenTTL)
	assert.Equal(t, time.Hour, cfg.App.ResetTokenTTL)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 64, cfg.Mail.QueueSize)
	assert.Equal(t, "localhost:8082", cfg.Server.HTTPAddress)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.withDefaults() // no DSN, no mail host, no base URLs

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidMailConfigs)
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/accounts"
	cfg.App.ConfirmationBaseURL = "https://example.com/api/auth/confirm"
	cfg.App.ResetBaseURL = "https://example.com/reset-password"
	cfg.Mail.Host = "smtp.example.com"
	cfg.Mail.From = "noreply@example.com"
	cfg.App.ResetTokenTTL = -time.Minute

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
