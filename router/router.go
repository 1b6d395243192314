// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/okravets/advent-quiz/cliparse"
	"github.com/okravets/advent-quiz/handlers"
	"github.com/okravets/advent-quiz/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	quizHandler := handlers.NewQuizHandler(db, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)
	audioHandler := handlers.NewAudioHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(userHandler.Logout))
	mux.HandleFunc("GET /me", middleware.WithLogging(userHandler.Me))

	// Calendar and questions
	mux.HandleFunc("GET /calendar", middleware.WithLogging(quizHandler.Calendar))
	mux.HandleFunc("GET /questions/{day}", middleware.WithLogging(quizHandler.GetQuestion))
	mux.HandleFunc("POST /questions/{day}/submit", middleware.WithLogging(quizHandler.SubmitAnswer))

	// Leaderboard (public)
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))

	// Admin (allowlist-gated)
	mux.HandleFunc("GET /admin/users", middleware.WithLogging(adminHandler.ListUsers))
	mux.HandleFunc("DELETE /admin/users/{id}", middleware.WithLogging(adminHandler.DeleteUser))
	mux.HandleFunc("GET /admin/winners.csv", middleware.WithLogging(adminHandler.WinnersCSV))
	mux.HandleFunc("GET /admin/users.csv", middleware.WithLogging(adminHandler.UsersCSV))

	// Background-music playlist
	mux.HandleFunc("GET /api/audio", middleware.WithLogging(audioHandler.ListTracks))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("advent-quiz API v1"))
	})

	return mux
}
