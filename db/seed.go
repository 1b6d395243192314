// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// correctAnswers maps each calendar day to the index (0-3) of its correct
// option. Question text itself lives in the localized catalog keyed by q_key;
// the store only needs the answer key.
var correctAnswers = map[int]int{
	1: 2, 2: 0, 3: 2, 4: 2, 5: 3, 6: 1, 7: 1, 8: 0, 9: 1, 10: 1,
	11: 1, 12: 2, 13: 1, 14: 1, 15: 2, 16: 0, 17: 0, 18: 1, 19: 2, 20: 3,
	21: 2, 22: 0, 23: 2, 24: 0, 25: 1,
}

// SeedQuestions upserts the 25 calendar questions. Re-running refreshes the
// q_key and correct_index of existing rows without touching submissions.
func SeedQuestions(db *sql.DB) error {
	for day := 1; day <= 25; day++ {
		idx, ok := correctAnswers[day]
		if !ok {
			idx = 1
		}
		_, err := db.Exec(`
			INSERT INTO questions (day, q_key, correct_index, text, answer)
			VALUES ($1, $2, $3, '', '')
			ON CONFLICT (day) DO UPDATE
			SET q_key = EXCLUDED.q_key, correct_index = EXCLUDED.correct_index
		`, day, fmt.Sprintf("q.%d", day), idx)
		if err != nil {
			return fmt.Errorf("failed to seed question for day %d: %w", day, err)
		}
	}
	return nil
}
