// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quiz implements the one-attempt-per-day answer submission.

Submit is the only state-changing, concurrency-sensitive operation in the
system. It validates the day, the unlock gate and the choice, then runs a
single short transaction: read question, check for a prior attempt, insert
the submission and increment the score iff the answer is correct.

At-most-one attempt per (user, question) is enforced twice: an existence
check inside the transaction for the common case, and the store's
UNIQUE(user_id, question_id) constraint as the arbiter when two requests
race. The losing request rolls back cleanly and reports
ErrAlreadySubmitted, so double-clicks and retries can never double-score.
*/
package quiz
