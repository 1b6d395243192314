// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// OptionsPerQuestion is the number of choices per question; valid choice
// indexes are 0..OptionsPerQuestion-1.
const OptionsPerQuestion = 4

// Calendar day range
const (
	FirstDay = 1
	LastDay  = 25
)

// Request types

type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Phone          string `json:"phone" validate:"omitempty,max=32"`
	ContactConsent bool   `json:"contact_consent"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Choice is a pointer so a missing field is distinguishable from choice 0.
type SubmitAnswerRequest struct {
	Choice *int `json:"choice"`
}

type DeleteUserRequest struct {
	ConfirmEmail string `json:"confirm_email"`
}

// Response types

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type SubmitAnswerResponse struct {
	Day     int    `json:"day"`
	Correct bool   `json:"correct"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

type CalendarResponse struct {
	MaxDay int               `json:"max_day"`
	Days   map[int]DayStatus `json:"days"`
}

type QuestionResponse struct {
	Day            int      `json:"day"`
	QKey           string   `json:"q_key"`
	Options        []string `json:"options"`
	Attempted      bool     `json:"attempted"`
	AlreadyCorrect bool     `json:"already_correct"`
	MaxDay         int      `json:"max_day"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type AudioResponse struct {
	Tracks []AudioTrack `json:"tracks"`
}

type AdminUsersResponse struct {
	Users []AdminUserRow `json:"users"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"` // Never expose in JSON
	Score          int       `json:"score"`
	Phone          *string   `json:"-"` // Never expose in JSON
	ContactConsent bool      `json:"-"` // Never expose in JSON
	CreatedAt      time.Time `json:"created_at"`
}

type UserProfile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Score     int       `json:"score"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type Question struct {
	ID           int64  `json:"id"`
	Day          int    `json:"day"`
	QKey         string `json:"q_key"`
	CorrectIndex int    `json:"-"` // Never expose in JSON
}

type Submission struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
	IsCorrect  bool      `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

type DayStatus struct {
	Attempted bool `json:"attempted"`
	Correct   bool `json:"correct"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Joined string `json:"joined"` // humanized, e.g. "3 days ago"
}

type AdminUserRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type AudioTrack struct {
	File  string `json:"file"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
