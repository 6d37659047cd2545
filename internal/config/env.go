// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads a .env file from the working directory into the process
// environment, if one exists. Variables already present in the environment
// are not overridden, so real env vars always win over the file.
func loadDotEnv() {
	_ = godotenv.Load()
}
