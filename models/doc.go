// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request and response types shared by the
handlers.

Domain types mirror the store schema (users, questions, submissions).
Sensitive fields (password hashes, phone numbers, correct answer indexes)
carry `json:"-"` so they can never leak through a response encoder.

Question text is not stored here: each question carries an opaque q_key
that the presentation layer resolves against its localized catalog.
*/
package models
