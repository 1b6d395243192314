// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/okravets/advent-quiz/auth"
	"github.com/okravets/advent-quiz/calendar"
	"github.com/okravets/advent-quiz/cliparse"
	"github.com/okravets/advent-quiz/middleware"
	"github.com/okravets/advent-quiz/models"
	"github.com/okravets/advent-quiz/quiz"
)

type QuizHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuizHandler(db *sql.DB, cfg cliparse.Config) *QuizHandler {
	return &QuizHandler{db: db, cfg: cfg}
}

func (h *QuizHandler) policy() calendar.Policy {
	return calendar.Policy{
		Year:     h.cfg.CalendarYear,
		OpenHour: h.cfg.OpenLocalHour,
		DevMode:  h.cfg.DevMode,
	}
}

// Calendar handles GET /calendar
// Returns the highest unlocked day and, for a logged-in caller, the
// attempted/correct status of every day. Anonymous callers get blank
// statuses.
func (h *QuizHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	maxDay := h.policy().UnlockedMaxDay(time.Now())

	days := make(map[int]models.DayStatus, models.LastDay)
	for d := models.FirstDay; d <= models.LastDay; d++ {
		days[d] = models.DayStatus{}
	}

	user, err := currentUser(h.db, r)
	if err != nil && !errors.Is(err, auth.ErrNoSession) {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err == nil {
		rows, err := h.db.Query(`
			SELECT q.day, s.is_correct
			FROM submissions s
			JOIN questions q ON s.question_id = q.id
			WHERE s.user_id = $1
		`, user.ID)
		if err != nil {
			slog.Error("failed to query submissions", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		defer rows.Close()

		for rows.Next() {
			var day int
			var correct bool
			if err := rows.Scan(&day, &correct); err != nil {
				slog.Error("failed to scan submission", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
				return
			}
			days[day] = models.DayStatus{Attempted: true, Correct: correct}
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CalendarResponse{
		MaxDay: maxDay,
		Days:   days,
	})
}

// GetQuestion handles GET /questions/{day}
func (h *QuizHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || day < models.FirstDay || day > models.LastDay {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid day")
		return
	}

	maxDay := h.policy().UnlockedMaxDay(time.Now())
	if day > maxDay {
		middleware.ErrorResponse(w, http.StatusForbidden, "This day is not unlocked yet")
		return
	}

	var questionID int64
	var qKey sql.NullString
	err = h.db.QueryRow(`SELECT id, q_key FROM questions WHERE day = $1`, day).
		Scan(&questionID, &qKey)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	key := qKey.String
	if key == "" {
		key = fmt.Sprintf("q.%d", day)
	}

	resp := models.QuestionResponse{
		Day:     day,
		QKey:    key,
		Options: fallbackOptions(day),
		MaxDay:  maxDay,
	}

	// Attempt state only exists for logged-in callers
	user, err := currentUser(h.db, r)
	if err != nil && !errors.Is(err, auth.ErrNoSession) {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == nil {
		var correct bool
		err := h.db.QueryRow(`
			SELECT is_correct FROM submissions WHERE user_id = $1 AND question_id = $2
		`, user.ID, questionID).Scan(&correct)
		if err != nil && err != sql.ErrNoRows {
			slog.Error("failed to query submission", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if err == nil {
			resp.Attempted = true
			resp.AlreadyCorrect = correct
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SubmitAnswer handles POST /questions/{day}/submit
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if errors.Is(err, auth.ErrNoSession) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Please sign in first")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid day")
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A missing choice fails the same precondition as an out-of-range one
	choice := -1
	if req.Choice != nil {
		choice = *req.Choice
	}

	maxDay := h.policy().UnlockedMaxDay(time.Now())

	result, err := quiz.Submit(h.db, user.ID, day, choice, maxDay)
	switch {
	case errors.Is(err, quiz.ErrInvalidDay):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid day")
		return
	case errors.Is(err, quiz.ErrDayLocked):
		middleware.ErrorResponse(w, http.StatusForbidden, "This day is not unlocked yet")
		return
	case errors.Is(err, quiz.ErrInvalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Select one of the four options")
		return
	case errors.Is(err, quiz.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already answered this day")
		return
	case err != nil:
		slog.Error("submission failed", "error", err, "user_id", user.ID, "day", day)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit answer")
		return
	}

	score := user.Score
	if err := h.db.QueryRow(`SELECT score FROM users WHERE id = $1`, user.ID).Scan(&score); err != nil {
		slog.Warn("failed to reload score", "error", err, "user_id", user.ID)
	}

	message := "Wrong answer. Only one attempt per day."
	if result.Correct {
		message = "Correct! Your score went up by one."
	}

	slog.Info("answer submitted", "user_id", user.ID, "day", day, "correct", result.Correct)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitAnswerResponse{
		Day:     result.Day,
		Correct: result.Correct,
		Score:   score,
		Message: message,
	})
}

// fallbackOptions builds the placeholder numeric options shown when the
// localized catalog has no entry for a day's question.
func fallbackOptions(day int) []string {
	base := day * 2
	options := make([]string, 0, models.OptionsPerQuestion)
	for i := -1; i < models.OptionsPerQuestion-1; i++ {
		options = append(options, strconv.Itoa(base+i))
	}
	return options
}
