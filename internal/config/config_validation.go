// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Structural rules (required fields, minimums) are declared as `validate`
// tags and checked with go-playground/validator; cross-field rules that the
// tag language cannot express are checked by hand afterwards.
func (cfg *StructuredConfig) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := time.LoadLocation(cfg.Logs.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidLogsConfigs, cfg.Logs.Timezone)
	}

	if cfg.Upstream.ConnectTimeout > cfg.Upstream.Timeout {
		return fmt.Errorf("%w: connect timeout exceeds total timeout", ErrInvalidUpstreamConfigs)
	}

	if cfg.Session.RegenerationInterval > cfg.Session.Timeout {
		return errors.Join(ErrInvalidSessionConfigs,
			errors.New("regeneration interval exceeds session timeout"))
	}

	return nil
}
