// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error describing
// every failed invariant otherwise.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.App.ConfirmationBaseURL == "" || cfg.App.ResetBaseURL == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.App.ConfirmationTokenTTL <= 0 || cfg.App.ResetTokenTTL <= 0 {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Mail.Host == "" || cfg.Mail.From == "" {
		err = errors.Join(err, ErrInvalidMailConfigs)
	}

	return err
}
