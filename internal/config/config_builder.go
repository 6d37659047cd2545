package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDotEnv() *configBuilder {
	// missing .env is not an error; the file is a local convenience
	loadDotEnv()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults last so mergo only fills fields
// no earlier source set. Boolean toggles are worded so that "off" is the
// zero value and survives merging.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			LogViewers: []string{"admin", "manager"},
		},
		Session: Session{
			Timeout:              30 * time.Minute,
			RegenerationInterval: 5 * time.Minute,
			StorePath:            "sessions.db",
			CookieName:           "sid",
		},
		Server: Server{
			HTTPAddress: "0.0.0.0:8080",
		},
		Logs: Logs{
			Dir:      "logs",
			Timezone: "Asia/Bangkok",
		},
		RateLimit: RateLimit{
			Dir:      "logs/rate_limits",
			Requests: 10,
			Window:   60 * time.Second,
		},
		Upstream: Upstream{
			Timeout:          30 * time.Second,
			ConnectTimeout:   10 * time.Second,
			MaxDateRangeDays: 365,
		},
	})
	return b
}
