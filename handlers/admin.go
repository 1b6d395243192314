// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/okravets/advent-quiz/auth"
	"github.com/okravets/advent-quiz/cliparse"
	"github.com/okravets/advent-quiz/middleware"
	"github.com/okravets/advent-quiz/models"
)

// utf8BOM makes spreadsheet apps detect the CSV exports as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// requireAdmin resolves the caller and checks the allowlist. On failure it
// writes the error response and returns ok=false.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, err := currentUser(h.db, r)
	if errors.Is(err, auth.ErrNoSession) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Please sign in first")
		return models.User{}, false
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.User{}, false
	}

	if !auth.IsAdmin(user.Email, h.cfg.AdminEmails) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Forbidden")
		return models.User{}, false
	}

	return user, true
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	rows, err := h.db.Query(`
		SELECT id, name, email, score, created_at
		FROM users
		ORDER BY score DESC
	`)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	users := []models.AdminUserRow{}
	for rows.Next() {
		var u models.AdminUserRow
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Score, &u.CreatedAt); err != nil {
			slog.Error("failed to scan user row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		users = append(users, u)
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminUsersResponse{Users: users})
}

// DeleteUser handles DELETE /admin/users/{id}
// The caller must echo the target's email in the request body; admins and
// the caller's own account cannot be deleted.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	targetID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || targetID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Bad user ID")
		return
	}

	var req models.DeleteUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var email string
	err = h.db.QueryRow(`SELECT email FROM users WHERE id = $1`, targetID).Scan(&email)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if auth.IsAdmin(email, h.cfg.AdminEmails) || targetID == admin.ID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Cannot delete admin or self")
		return
	}

	if auth.NormalizeEmail(req.ConfirmEmail) != auth.NormalizeEmail(email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email mismatch")
		return
	}

	// Sessions and submissions cascade with the user row
	if _, err := h.db.Exec(`DELETE FROM users WHERE id = $1`, targetID); err != nil {
		slog.Error("failed to delete user", "error", err, "target_id", targetID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	slog.Info("user deleted", "target_id", targetID, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "User deleted"})
}

// WinnersCSV handles GET /admin/winners.csv?limit=N
// Exports the top non-admin users; limit defaults to 10, clamped to [1, 1000].
func (h *AdminHandler) WinnersCSV(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := h.db.Query(`
		SELECT name, email, score, created_at
		FROM users
		ORDER BY score DESC, created_at ASC
		LIMIT 500
	`)
	if err != nil {
		slog.Error("failed to query winners", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	records := [][]string{{"name", "email", "score", "created_at"}}
	for rows.Next() {
		var name, email string
		var score int
		var createdAt time.Time
		if err := rows.Scan(&name, &email, &score, &createdAt); err != nil {
			slog.Error("failed to scan winner row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if auth.IsAdmin(email, h.cfg.AdminEmails) {
			continue
		}
		records = append(records, []string{name, email, strconv.Itoa(score), createdAt.Format(time.RFC3339)})
		if len(records) == limit+1 {
			break
		}
	}

	writeCSV(w, "winners.csv", records)
}

// UsersCSV handles GET /admin/users.csv
// Full export including contact details, ordered by registration time.
func (h *AdminHandler) UsersCSV(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	rows, err := h.db.Query(`
		SELECT name, email, score, created_at, phone, contact_consent
		FROM users
		ORDER BY created_at ASC
	`)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	records := [][]string{{"name", "email", "score", "created_at", "phone", "contact_consent"}}
	for rows.Next() {
		var name, email string
		var score int
		var createdAt time.Time
		var phone sql.NullString
		var consent bool
		if err := rows.Scan(&name, &email, &score, &createdAt, &phone, &consent); err != nil {
			slog.Error("failed to scan user row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		records = append(records, []string{
			name, email, strconv.Itoa(score), createdAt.Format(time.RFC3339),
			phone.String, strconv.FormatBool(consent),
		})
	}

	writeCSV(w, "users.csv", records)
}

func writeCSV(w http.ResponseWriter, filename string, records [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(utf8BOM); err != nil {
		slog.Error("failed to write CSV BOM", "error", err)
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		slog.Error("failed to write CSV", "error", err)
	}
}
