// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Each handler struct holds the database connection and the immutable config,
injected at construction:

	userHandler := handlers.NewUserHandler(db, cfg)

# Handlers

  - UserHandler: register, login, logout, current profile
  - QuizHandler: calendar state, question view, answer submission
  - LeaderboardHandler: public top-50 scoreboard
  - AdminHandler: user management and CSV exports (allowlist-gated)
  - AudioHandler: background-music playlist listing

# Authentication

Authenticated requests carry an opaque session token in the X-Session-Token
header; currentUser resolves it against the sessions table. Admin routes
additionally check the email allowlist.

# Outcomes

Domain outcomes from the quiz package map onto HTTP statuses: invalid
input 400, locked day 403, missing question 404, repeated attempt 409.
Store failures after rollback surface as 500 and are safe to retry.
*/
package handlers
