// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         int
	Host         string
	DatabaseURL  string
	DatabaseType string

	// Calendar gating
	DevMode       bool
	OpenLocalHour int
	CalendarYear  int

	// Admin allowlist, normalized to lowercase
	AdminEmails []string

	MediaDir   string
	SessionTTL time.Duration
}

// ParseFlags validates flags, applies environment fallbacks and defaults.
// The returned Config is loaded once at startup and treated as immutable;
// components receive it by value rather than reading ambient state.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var adminEmails string
	var devMode string
	var sessionTTLHours int

	fs := flag.NewFlagSet("advent-quiz", flag.ContinueOnError)

	// Network and store config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Host, "host", "", "Bind address")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")

	// Calendar gating
	fs.StringVar(&devMode, "dev", "", "Dev mode: unlock all days (1 to enable)")
	fs.IntVar(&cfg.OpenLocalHour, "open-hour", -1, "Local hour at which the current day opens")
	fs.IntVar(&cfg.CalendarYear, "year", 0, "Target calendar year")

	fs.StringVar(&adminEmails, "admin-emails", "", "Comma-separated admin email allowlist")
	fs.StringVar(&cfg.MediaDir, "media-dir", "", "Directory with background-music tracks")
	fs.IntVar(&sessionTTLHours, "session-ttl", 0, "Session lifetime in hours")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.Host == "" {
		cfg.Host = os.Getenv("HOST")
	}
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if devMode == "" {
		devMode = os.Getenv("DEV_MODE")
	}
	cfg.DevMode = devMode == "1" || devMode == "true"

	if cfg.OpenLocalHour < 0 {
		cfg.OpenLocalHour = 0
		if hourStr := os.Getenv("OPEN_LOCAL_HOUR"); hourStr != "" {
			hour, err := strconv.Atoi(hourStr)
			if err != nil {
				return Config{}, errors.New("invalid OPEN_LOCAL_HOUR env variable")
			}
			cfg.OpenLocalHour = hour
		}
	}

	if cfg.CalendarYear == 0 {
		cfg.CalendarYear = 2025
		if yearStr := os.Getenv("CALENDAR_YEAR"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				return Config{}, errors.New("invalid CALENDAR_YEAR env variable")
			}
			cfg.CalendarYear = year
		}
	}

	if adminEmails == "" {
		adminEmails = os.Getenv("ADMIN_EMAILS")
	}
	cfg.AdminEmails = ParseAdminEmails(adminEmails)

	if cfg.MediaDir == "" {
		cfg.MediaDir = os.Getenv("MEDIA_DIR")
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "public/audio"
	}

	if sessionTTLHours == 0 {
		sessionTTLHours = 720
		if ttlStr := os.Getenv("SESSION_TTL_HOURS"); ttlStr != "" {
			ttl, err := strconv.Atoi(ttlStr)
			if err != nil || ttl <= 0 {
				return Config{}, errors.New("invalid SESSION_TTL_HOURS env variable")
			}
			sessionTTLHours = ttl
		}
	}
	cfg.SessionTTL = time.Duration(sessionTTLHours) * time.Hour

	return cfg, nil
}

// ParseAdminEmails splits a comma-separated allowlist, trimming whitespace,
// lowercasing each entry and dropping empty ones.
func ParseAdminEmails(raw string) []string {
	var admins []string
	for _, part := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			admins = append(admins, email)
		}
	}
	return admins
}
