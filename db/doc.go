// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and question seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Two dialects are supported: postgres (production) and sqlite (local dev).

# Tables

  - users: identity, hashed credential, score
  - questions: one per calendar day 1..25, correct-option index
  - submissions: one attempt per (user, question), UNIQUE enforced
  - sessions: opaque login tokens with expiry

# Relationships

	users 1──* submissions
	questions 1──* submissions
	users 1──* sessions

All foreign keys use ON DELETE CASCADE, so deleting a user removes their
submissions and sessions in the same statement.

# Seeding

SeedQuestions upserts days 1..25 with their correct-answer indexes. It is
idempotent and never modifies submissions, so it runs on every startup.
*/
package db
