// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/okravets/advent-quiz/auth"
	"github.com/okravets/advent-quiz/cliparse"
	"github.com/okravets/advent-quiz/middleware"
	"github.com/okravets/advent-quiz/models"
)

var validate = validator.New()

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Register handles POST /register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, registerValidationMessage(err))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	email := auth.NormalizeEmail(req.Email)

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	var userID int64
	err = h.db.QueryRow(`
		INSERT INTO users (name, email, password_hash, phone, contact_consent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, req.Name, email, hash, phone, req.ContactConsent, time.Now()).Scan(&userID)

	if err != nil {
		if isUniqueViolation(err, "users.email") {
			middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		UserID: userID,
	})
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	email := auth.NormalizeEmail(req.Email)

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, email, name, password_hash, score, created_at
		FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Score, &user.CreatedAt)

	if err == sql.ErrNoRows || (err == nil && !auth.CheckPassword(user.PasswordHash, req.Password)) {
		// Same response for unknown email and wrong password
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token := auth.NewSessionToken()
	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, user.ID, now, now.Add(h.cfg.SessionTTL))

	if err != nil {
		slog.Error("failed to insert session", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  h.profile(user),
	})
}

// Logout handles POST /logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(SessionHeader)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, SessionHeader+" header required")
		return
	}

	if _, err := h.db.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

// Me handles GET /me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if errors.Is(err, auth.ErrNoSession) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.profile(user))
}

func (h *UserHandler) profile(user models.User) models.UserProfile {
	return models.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Score:     user.Score,
		IsAdmin:   auth.IsAdmin(user.Email, h.cfg.AdminEmails),
		CreatedAt: user.CreatedAt,
	}
}

// registerValidationMessage maps the first validation failure to a message
// the caller can show directly.
func registerValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid registration data"
	}

	switch field := verrs[0]; field.Field() {
	case "Name":
		return "Name must be 2-100 characters"
	case "Email":
		return "A valid email address is required"
	case "Password":
		return "Password must be at least 6 characters"
	case "Phone":
		return "Phone number is too long"
	default:
		return "Invalid registration data"
	}
}
