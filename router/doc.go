// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers.

Routes use Go 1.22+ method patterns on the standard ServeMux:

	mux := router.NewRouter(db, cfg)
	http.ListenAndServe(addr, mux)

# Route Groups

  - Accounts: /register, /login, /logout, /me
  - Calendar: /calendar, /questions/{day}, /questions/{day}/submit
  - Leaderboard: /leaderboard
  - Admin: /admin/users, /admin/users/{id}, /admin/winners.csv, /admin/users.csv
  - Misc: /health, /api/audio, /

All routes are wrapped with request logging. Authentication happens inside
the handlers, not at the router.
*/
package router
