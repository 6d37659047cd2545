package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] wrapper so operators can write "30m" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		Secret             string   `json:"secret"`
		Users              string   `json:"users"`
		UseHashedPasswords bool     `json:"use_hashed_passwords"`
		AdminPassword      string   `json:"admin_password"`
		ManagerPassword    string   `json:"manager_password"`
		LogViewers         []string `json:"log_viewers"`
	} `json:"app,omitempty"`

	Session struct {
		Timeout              Duration `json:"timeout"`
		RegenerationInterval Duration `json:"regeneration_interval"`
		StorePath            string   `json:"store_path"`
		CookieName           string   `json:"cookie_name"`
	} `json:"session,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Logs struct {
		Dir                  string `json:"dir"`
		Timezone             string `json:"timezone"`
		DisableLoginAttempts bool   `json:"disable_login_attempts"`
		DisableDataAccess    bool   `json:"disable_data_access"`
	} `json:"logs,omitempty"`

	RateLimit struct {
		Dir      string   `json:"dir"`
		Requests int      `json:"requests"`
		Window   Duration `json:"window"`
	} `json:"rate_limit,omitempty"`

	Upstream struct {
		URL              string   `json:"api_url"`
		Timeout          Duration `json:"timeout"`
		ConnectTimeout   Duration `json:"connect_timeout"`
		MaxDateRangeDays int      `json:"max_date_range_days"`
	} `json:"upstream,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Secret:             jsonCfg.App.Secret,
			Users:              jsonCfg.App.Users,
			UseHashedPasswords: jsonCfg.App.UseHashedPasswords,
			AdminPassword:      jsonCfg.App.AdminPassword,
			ManagerPassword:    jsonCfg.App.ManagerPassword,
			LogViewers:         jsonCfg.App.LogViewers,
		},
		Session: Session{
			Timeout:              time.Duration(jsonCfg.Session.Timeout),
			RegenerationInterval: time.Duration(jsonCfg.Session.RegenerationInterval),
			StorePath:            jsonCfg.Session.StorePath,
			CookieName:           jsonCfg.Session.CookieName,
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Logs: Logs{
			Dir:                  jsonCfg.Logs.Dir,
			Timezone:             jsonCfg.Logs.Timezone,
			DisableLoginAttempts: jsonCfg.Logs.DisableLoginAttempts,
			DisableDataAccess:    jsonCfg.Logs.DisableDataAccess,
		},
		RateLimit: RateLimit{
			Dir:      jsonCfg.RateLimit.Dir,
			Requests: jsonCfg.RateLimit.Requests,
			Window:   time.Duration(jsonCfg.RateLimit.Window),
		},
		Upstream: Upstream{
			URL:              jsonCfg.Upstream.URL,
			Timeout:          time.Duration(jsonCfg.Upstream.Timeout),
			ConnectTimeout:   time.Duration(jsonCfg.Upstream.ConnectTimeout),
			MaxDateRangeDays: jsonCfg.Upstream.MaxDateRangeDays,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// MarshalJSON renders the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
