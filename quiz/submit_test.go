// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectQuestion   = `SELECT id, correct_index FROM questions WHERE day = $1`
	selectAttempted  = `SELECT EXISTS(SELECT 1 FROM submissions WHERE user_id = $1 AND question_id = $2)`
	insertSubmission = `INSERT INTO submissions (user_id, question_id, is_correct, created_at) VALUES ($1, $2, $3, $4)`
	updateScore      = `UPDATE users SET score = score + 1 WHERE id = $1`
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestSubmit_InvalidDay(t *testing.T) {
	db, mock := newMockDB(t)

	for _, day := range []int{0, -3, 26, 100} {
		_, err := Submit(db, 1, day, 0, 25)
		assert.ErrorIs(t, err, ErrInvalidDay, "day %d", day)
	}

	// Precondition failures must not touch the store
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_DayLocked(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := Submit(db, 1, 10, 0, 4)
	assert.ErrorIs(t, err, ErrDayLocked)

	_, err = Submit(db, 1, 1, 0, 0)
	assert.ErrorIs(t, err, ErrDayLocked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_InvalidChoice(t *testing.T) {
	db, mock := newMockDB(t)

	for _, choice := range []int{-1, 4, 99} {
		_, err := Submit(db, 1, 5, choice, 25)
		assert.ErrorIs(t, err, ErrInvalidChoice, "choice %d", choice)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_QuestionNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := Submit(db, 1, 5, 2, 25)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_AlreadySubmitted(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := Submit(db, 42, 5, 2, 25)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(insertSubmission)).
		WithArgs(int64(42), int64(105), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateScore)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := Submit(db, 42, 5, 3, 25)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 5, result.Day)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_WrongAnswer(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	// No score update for a wrong answer
	mock.ExpectExec(regexp.QuoteMeta(insertSubmission)).
		WithArgs(int64(42), int64(105), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := Submit(db, 42, 5, 0, 25)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_DuplicateInsertRace(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(insertSubmission)).
		WithArgs(int64(42), int64(105), true, sqlmock.AnyArg()).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "submissions_user_id_question_id_key"`))
	mock.ExpectRollback()

	// The racing loser must surface as AlreadySubmitted with no score change
	_, err := Submit(db, 42, 5, 3, 25)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_DuplicateInsertRace_SQLite(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(insertSubmission)).
		WithArgs(int64(42), int64(105), true, sqlmock.AnyArg()).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: submissions.user_id, submissions.question_id (2067)"))
	mock.ExpectRollback()

	_, err := Submit(db, 42, 5, 3, 25)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_ScoreUpdateFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(insertSubmission)).
		WithArgs(int64(42), int64(105), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateScore)).
		WithArgs(int64(42)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := Submit(db, 42, 5, 3, 25)
	require.Error(t, err)
	// Not one of the tagged outcomes: a generic transaction failure
	assert.NotErrorIs(t, err, ErrAlreadySubmitted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestion)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correct_index"}).AddRow(105, 3))
	mock.ExpectQuery(regexp.QuoteMeta(selectAttempted)).
		WithArgs(int64(42), int64(105)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(insertSubmission)).
		WithArgs(int64(42), int64(105), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("server closed the connection"))

	_, err := Submit(db, 42, 5, 0, 25)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
