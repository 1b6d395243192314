// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"time"

	"github.com/okravets/advent-quiz/models"
)

// Policy is the calendar gating configuration, loaded once at startup.
type Policy struct {
	// Year is the target calendar year (December of this year).
	Year int
	// OpenHour is the server-local hour at which the current day opens.
	OpenHour int
	// DevMode unlocks all days unconditionally, as a testing bypass.
	DevMode bool
}

// UnlockedMaxDay returns the highest calendar day open to all users at the
// given wall-clock time, in [0, 25]. The policy is defined in terms of the
// server-local calendar fields of now.
//
// Unlocking is cumulative: on day D, days 1..D-1 stay open and day D opens
// once the local hour reaches OpenHour. Before that hour only 1..D-1 are
// open; the result is clamped to [0, 25]. (So on December 1 before
// OpenHour the whole calendar is still closed.)
//
// Pure function of its inputs; out-of-range OpenHour values are clamped
// rather than rejected.
func (p Policy) UnlockedMaxDay(now time.Time) int {
	if p.DevMode {
		return models.LastDay
	}

	if now.Year() < p.Year {
		return 0
	}
	if now.Year() > p.Year {
		return models.LastDay
	}
	// December is the last month, so within the target year any earlier
	// month means the calendar has not started.
	if now.Month() < time.December {
		return 0
	}

	day := now.Day()
	hour := now.Hour()

	if day < models.FirstDay {
		return 0
	}
	if day > models.LastDay {
		return models.LastDay
	}

	openHour := p.OpenHour
	if openHour < 0 {
		openHour = 0
	}
	if openHour > 23 {
		openHour = 23
	}

	opened := day
	if hour < openHour {
		opened = day - 1
	}
	if opened < 0 {
		opened = 0
	}
	if opened > models.LastDay {
		opened = models.LastDay
	}
	return opened
}
