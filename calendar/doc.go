// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package calendar implements the date-gated day unlock policy.

The policy is a pure function of wall-clock time and three configuration
values (target year, open hour, dev override). It yields the highest day
index in [0, 25] currently open to all users:

	policy := calendar.Policy{Year: 2025, OpenHour: 9}
	maxDay := policy.UnlockedMaxDay(time.Now())

Rule: outside December of the target year everything is either closed (0)
or fully open (25). Within December, day D opens at OpenHour local time;
before that hour only days 1..D-1 are open. The result is clamped to
[0, 25], so December 1 before OpenHour yields 0 rather than -1.
*/
package calendar
