// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

CLI flags take precedence over environment variables; defaults apply last:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - -p / PORT: server port (default 3000)
  - -host / HOST: bind address (default 0.0.0.0)
  - -d / DATABASE_URL: connection string (required)
  - -t / DATABASE_TYPE: postgres or sqlite (default postgres)
  - -dev / DEV_MODE: "1" unlocks all calendar days
  - -open-hour / OPEN_LOCAL_HOUR: local hour at which the current day opens
  - -year / CALENDAR_YEAR: target calendar year (default 2025)
  - -admin-emails / ADMIN_EMAILS: comma-separated admin allowlist
  - -media-dir / MEDIA_DIR: audio playlist directory
  - -session-ttl / SESSION_TTL_HOURS: session lifetime (default 720)

The admin allowlist is normalized to lowercase at parse time so all
downstream comparisons are case-insensitive.
*/
package cliparse
