package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

func TestCredit(t *testing.T) {
	u := &domain.RegisteredUser{ID: "u1", Balance: 10}
	require.NoError(t, Credit(u, 5.5))
	assert.Equal(t, 15.5, u.Balance)

	require.NoError(t, Credit(u, 0))
	assert.Equal(t, 15.5, u.Balance)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		err := Credit(u, bad)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.Equal(t, 15.5, u.Balance)
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		amount  float64
		wantErr error
		want    float64
	}{
		{"exact balance", 10, 10, nil, 0},
		{"partial", 25, 10, nil, 15},
		{"insufficient", 5, 10, ErrInsufficientFunds, 5},
		{"negative", 5, -1, ErrInvalidAmount, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &domain.RegisteredUser{ID: "u1", Balance: tt.balance}
			err := Debit(u, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, u.Balance)
		})
	}
}
