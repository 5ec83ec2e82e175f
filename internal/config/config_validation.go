// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by validate when the corresponding setting was not
// supplied by any configuration source.
const (
	DefaultHTTPAddress   = "localhost:8080"
	DefaultTokenIssuer   = "go-shop"
	DefaultTokenDuration = 24 * time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// for optional settings.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	// An empty DSN is allowed: the server then runs on the in-memory store.
	return nil
}
