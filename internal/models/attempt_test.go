package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		name  string
		score int
		total int
		want  int
	}{
		{"empty quiz", 0, 0, 0},
		{"all correct", 3, 3, 100},
		{"none correct", 0, 5, 0},
		{"two thirds rounds up", 2, 3, 67},
		{"one third rounds down", 1, 3, 33},
		{"half", 1, 2, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attempt := TestAttempt{Score: tc.score, TotalQuestions: tc.total}
			assert.Equal(t, tc.want, attempt.Percentage())
		})
	}
}
