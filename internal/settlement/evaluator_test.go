package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	j := closedJornada("j1", H, D, A)
	withResult := j
	withResult.BotinMatchID = j.Matches[0].ID
	withResult.BotinResult = strPtr("2-1")
	badResult := withResult
	badResult.BotinResult = strPtr("dos-uno")

	tests := []struct {
		name string
		eval func() Evaluation
		want Evaluation
	}{
		{
			name: "all correct without botin",
			eval: func() Evaluation { c := cartonFor("c", "u", j, H, D, A); return Evaluate(&c, &j) },
			want: Evaluation{Hits: 3, Valid: true},
		},
		{
			name: "partial hits",
			eval: func() Evaluation { c := cartonFor("c", "u", j, H, H, A); return Evaluate(&c, &j) },
			want: Evaluation{Hits: 2, Valid: true},
		},
		{
			name: "missing prediction counts as miss",
			eval: func() Evaluation { c := cartonFor("c", "u", j, H, D); return Evaluate(&c, &j) },
			want: Evaluation{Hits: 2, Valid: true},
		},
		{
			name: "exact botin keeps carton valid",
			eval: func() Evaluation {
				c := withBotin(cartonFor("c", "u", withResult, H, D, A), "2", "1")
				return Evaluate(&c, &withResult)
			},
			want: Evaluation{Hits: 3, Valid: true},
		},
		{
			name: "wrong botin voids the carton",
			eval: func() Evaluation {
				c := withBotin(cartonFor("c", "u", withResult, H, D, A), "1", "1")
				return Evaluate(&c, &withResult)
			},
			want: Evaluation{Hits: 0, Valid: false},
		},
		{
			name: "unparseable prediction voids the carton",
			eval: func() Evaluation {
				c := withBotin(cartonFor("c", "u", withResult, H, D, A), "x", "1")
				return Evaluate(&c, &withResult)
			},
			want: Evaluation{Hits: 0, Valid: false},
		},
		{
			name: "unparseable result voids cartons that played botin",
			eval: func() Evaluation {
				c := withBotin(cartonFor("c", "u", badResult, H, D, A), "2", "1")
				return Evaluate(&c, &badResult)
			},
			want: Evaluation{Hits: 0, Valid: false},
		},
		{
			name: "no botin play is unaffected by botin result",
			eval: func() Evaluation {
				c := cartonFor("c", "u", withResult, H, D, H)
				return Evaluate(&c, &withResult)
			},
			want: Evaluation{Hits: 2, Valid: true},
		},
		{
			name: "botin play without botin result is not checked",
			eval: func() Evaluation {
				c := withBotin(cartonFor("c", "u", j, H, D, A), "7", "7")
				return Evaluate(&c, &j)
			},
			want: Evaluation{Hits: 3, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.eval())
		})
	}
}
