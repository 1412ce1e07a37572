// Package config loads the platform configuration: defaults overridden by
// an optional TOML file (path from AUCTION_CONFIG or the default location).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Server holds the HTTP listen settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Auth holds session and password-reset settings.
type Auth struct {
	JWTSecret  string `toml:"jwt_secret"`
	JWTExpiry  string `toml:"jwt_expiry"`
	OTPExpiry  string `toml:"otp_expiry"`
	CookieName string `toml:"cookie_name"`
}

// Sweep holds the background sweep cadence and the commission rate.
type Sweep struct {
	Interval       string  `toml:"interval"`
	CommissionRate float64 `toml:"commission_rate"`
}

// SMTP holds the outbound mail transport settings. An empty Host disables
// real delivery and messages are logged instead.
type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// Storage selects the record store backend and the image upload location.
type Storage struct {
	Backend    string `toml:"backend"` // "memory" or "sqlite"
	SQLitePath string `toml:"sqlite_path"`
	UploadDir  string `toml:"upload_dir"`
	PublicBase string `toml:"public_base"`
}

// Config is the full application configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Auth    Auth    `toml:"auth"`
	Sweep   Sweep   `toml:"sweep"`
	SMTP    SMTP    `toml:"smtp"`
	Storage Storage `toml:"storage"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Auth: Auth{
			JWTSecret:  "change-me",
			JWTExpiry:  "168h",
			OTPExpiry:  "15m",
			CookieName: "token",
		},
		Sweep: Sweep{
			Interval:       "1m",
			CommissionRate: 0.05,
		},
		SMTP: SMTP{Port: 587, From: "Auction Platform <no-reply@localhost>"},
		Storage: Storage{
			Backend:    "memory",
			SQLitePath: "auction.db",
			UploadDir:  "uploads",
			PublicBase: "http://localhost:8080/uploads",
		},
	}
}

// Load returns the defaults overridden by the TOML file at path, if any.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("AUCTION_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := time.ParseDuration(c.Sweep.Interval); err != nil {
		return fmt.Errorf("config: sweep interval %q: %w", c.Sweep.Interval, err)
	}
	if _, err := time.ParseDuration(c.Auth.JWTExpiry); err != nil {
		return fmt.Errorf("config: jwt expiry %q: %w", c.Auth.JWTExpiry, err)
	}
	if _, err := time.ParseDuration(c.Auth.OTPExpiry); err != nil {
		return fmt.Errorf("config: otp expiry %q: %w", c.Auth.OTPExpiry, err)
	}
	if c.Sweep.CommissionRate < 0 || c.Sweep.CommissionRate >= 1 {
		return fmt.Errorf("config: commission rate %v out of range", c.Sweep.CommissionRate)
	}
	if c.Storage.Backend != "memory" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// SweepInterval returns the parsed sweep cadence.
func (c Config) SweepInterval() time.Duration {
	d, _ := time.ParseDuration(c.Sweep.Interval)
	return d
}

// JWTExpiry returns the parsed session token lifetime.
func (c Config) JWTExpiry() time.Duration {
	d, _ := time.ParseDuration(c.Auth.JWTExpiry)
	return d
}

// OTPExpiry returns the parsed password-reset OTP lifetime.
func (c Config) OTPExpiry() time.Duration {
	d, _ := time.ParseDuration(c.Auth.OTPExpiry)
	return d
}
