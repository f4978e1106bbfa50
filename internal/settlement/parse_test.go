package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"Bs 1.250.000", 1250000},
		{"Bs 300", 300},
		{"5000", 5000},
		{"  Bs. 5.000,00 ", 500000},
		{"", 0},
		{"Bs", 0},
		{"sin premio", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in))
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in     string
		want   Score
		wantOK bool
	}{
		{"2-1", Score{Local: 2, Visitor: 1}, true},
		{" 0 - 0 ", Score{}, true},
		{"10-3", Score{Local: 10, Visitor: 3}, true},
		{"2:1", Score{}, false},
		{"2-", Score{}, false},
		{"-1", Score{}, false},
		{"a-b", Score{}, false},
		{"1-2-3", Score{}, false},
		{"", Score{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseScore(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidGoals(t *testing.T) {
	assert.True(t, ValidGoals("0"))
	assert.True(t, ValidGoals(" 3 "))
	assert.False(t, ValidGoals(""))
	assert.False(t, ValidGoals("-1"))
	assert.False(t, ValidGoals("1.5"))
	assert.False(t, ValidGoals("dos"))
}
