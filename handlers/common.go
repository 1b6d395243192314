// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/okravets/advent-quiz/auth"
	"github.com/okravets/advent-quiz/models"
)

// SessionHeader carries the opaque login token on authenticated requests.
const SessionHeader = "X-Session-Token"

// currentUser resolves the session token on r to its user. Expired or
// unknown tokens return auth.ErrNoSession.
func currentUser(db *sql.DB, r *http.Request) (models.User, error) {
	token := r.Header.Get(SessionHeader)
	if token == "" {
		return models.User{}, auth.ErrNoSession
	}

	var user models.User
	err := db.QueryRow(`
		SELECT u.id, u.email, u.name, u.score, u.created_at
		FROM users u
		JOIN sessions s ON s.user_id = u.id
		WHERE s.token = $1 AND s.expires_at > $2
	`, token, time.Now()).Scan(&user.ID, &user.Email, &user.Name, &user.Score, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, auth.ErrNoSession
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// isUniqueViolation recognizes duplicate-key errors from both supported
// drivers (lib/pq and modernc sqlite).
func isUniqueViolation(err error, constraint string) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: "+constraint) ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
