// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/okravets/advent-quiz/models"
)

var (
	ErrInvalidDay       = fmt.Errorf("day must be between %d and %d", models.FirstDay, models.LastDay)
	ErrDayLocked        = fmt.Errorf("day is not unlocked yet")
	ErrInvalidChoice    = fmt.Errorf("choice must be between 0 and %d", models.OptionsPerQuestion-1)
	ErrQuestionNotFound = fmt.Errorf("question not found")
	ErrAlreadySubmitted = fmt.Errorf("answer already submitted")
)

// Result reports the outcome of an accepted submission.
type Result struct {
	Day     int
	Correct bool
}

// Submit records a user's single permitted attempt at the question for day.
// maxDay is the value currently returned by the unlock policy.
//
// Preconditions are checked in order, first failure wins: ErrInvalidDay,
// ErrDayLocked, ErrInvalidChoice, ErrQuestionNotFound, ErrAlreadySubmitted.
// None of them touch the store beyond reads.
//
// On success one submission row is inserted and, only if the choice matches
// the question's correct index, the user's score is incremented by one. Both
// writes commit together or not at all. A racing duplicate submission loses
// to the UNIQUE(user_id, question_id) constraint and reports
// ErrAlreadySubmitted; the loser's transaction rolls back with the score
// untouched, so a retry of the whole operation is always safe.
func Submit(db *sql.DB, userID int64, day, choice, maxDay int) (Result, error) {
	if day < models.FirstDay || day > models.LastDay {
		return Result{}, ErrInvalidDay
	}
	if day > maxDay {
		return Result{}, ErrDayLocked
	}
	if choice < 0 || choice >= models.OptionsPerQuestion {
		return Result{}, ErrInvalidChoice
	}

	tx, err := db.Begin()
	if err != nil {
		return Result{}, fmt.Errorf("failed to begin submission: %w", err)
	}
	defer tx.Rollback()

	var questionID int64
	var correctIndex int
	err = tx.QueryRow(`SELECT id, correct_index FROM questions WHERE day = $1`, day).
		Scan(&questionID, &correctIndex)
	if err == sql.ErrNoRows {
		return Result{}, ErrQuestionNotFound
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to load question: %w", err)
	}

	var attempted bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM submissions WHERE user_id = $1 AND question_id = $2)`,
		userID, questionID).Scan(&attempted)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check prior submission: %w", err)
	}
	if attempted {
		return Result{}, ErrAlreadySubmitted
	}

	correct := choice == correctIndex

	_, err = tx.Exec(`INSERT INTO submissions (user_id, question_id, is_correct, created_at) VALUES ($1, $2, $3, $4)`,
		userID, questionID, correct, time.Now())
	if err != nil {
		// A concurrent submission slipped between the existence check and
		// the insert; the constraint is the arbiter, this caller lost.
		if isUniqueViolation(err) {
			return Result{}, ErrAlreadySubmitted
		}
		return Result{}, fmt.Errorf("failed to insert submission: %w", err)
	}

	if correct {
		if _, err := tx.Exec(`UPDATE users SET score = score + 1 WHERE id = $1`, userID); err != nil {
			return Result{}, fmt.Errorf("failed to increment score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("failed to commit submission: %w", err)
	}

	return Result{Day: day, Correct: correct}, nil
}

// isUniqueViolation recognizes the duplicate-key errors of both supported
// drivers (lib/pq and modernc sqlite).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: submissions.user_id, submissions.question_id") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
