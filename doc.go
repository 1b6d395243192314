// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Advent Quiz API server.

Advent Quiz is a seasonal advent-calendar trivia service: users register,
answer one multiple-choice question per unlocked December day (1-25),
accumulate a score, and view a leaderboard. Admins can list and delete
users and export CSV reports.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." -admin-emails "boss@example.com"

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 3000)
  - HOST: bind address (default: 0.0.0.0)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DEV_MODE (-dev): unlock all 25 days regardless of date
  - OPEN_LOCAL_HOUR (-open-hour): local hour at which the current day opens
  - CALENDAR_YEAR (-year): target calendar year (default: 2025)
  - ADMIN_EMAILS (-admin-emails): comma-separated admin allowlist
  - MEDIA_DIR (-media-dir): directory scanned by the audio playlist endpoint
  - SESSION_TTL_HOURS: session lifetime (default: 720)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, quiz, leaderboard, admin, audio)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing, session tokens, admin allowlist
  - calendar: Date-gated day unlock policy
  - quiz: One-attempt-per-day answer submission transaction
  - db: Schema creation and question seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
