// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, session token generation and the
admin allowlist check.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(req.Password)
	ok := auth.CheckPassword(hash, candidate)

# Sessions

Login creates a random UUIDv4 token stored in the sessions table; clients
send it back in the X-Session-Token header. Tokens expire server-side via
the sessions.expires_at column.

# Admins

Admin status is an email allowlist loaded once at startup. All comparisons
are case-insensitive; emails are normalized with NormalizeEmail before any
lookup or insert.
*/
package auth
