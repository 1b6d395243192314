// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okravets/advent-quiz/auth"
	"github.com/okravets/advent-quiz/cliparse"
	"github.com/okravets/advent-quiz/middleware"
	"github.com/okravets/advent-quiz/models"
)

// leaderboardSize is the number of entries shown publicly. A larger window
// is fetched first because admin accounts are filtered out after the query.
const (
	leaderboardSize  = 50
	leaderboardFetch = 200
)

type LeaderboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewLeaderboardHandler(db *sql.DB, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, cfg: cfg}
}

// GetLeaderboard handles GET /leaderboard
// Ties are broken by registration time: earlier accounts rank higher.
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT name, email, score, created_at
		FROM users
		ORDER BY score DESC, created_at ASC
		LIMIT $1
	`, leaderboardFetch)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var name, email string
		var score int
		var createdAt time.Time
		if err := rows.Scan(&name, &email, &score, &createdAt); err != nil {
			slog.Error("failed to scan leaderboard row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		// Admin accounts compete off the record
		if auth.IsAdmin(email, h.cfg.AdminEmails) {
			continue
		}

		entries = append(entries, models.LeaderboardEntry{
			Rank:   len(entries) + 1,
			Name:   name,
			Score:  score,
			Joined: humanize.Time(createdAt),
		})

		if len(entries) == leaderboardSize {
			break
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{
		Entries: entries,
	})
}
