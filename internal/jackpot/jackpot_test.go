package jackpot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

func TestFromSnapshot(t *testing.T) {
	now := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	s := &domain.Snapshot{
		Version:          7,
		BotinAmount:      1250.5,
		GorditoJornadaID: "j9",
		GorditoAmount:    "Bs 5.000",
	}

	u := FromSnapshot(s, now)
	assert.Equal(t, 1250.5, u.BotinAmount)
	assert.Equal(t, "j9", u.GorditoJornadaID)
	assert.Equal(t, "Bs 5.000", u.GorditoAmount)
	assert.Equal(t, int64(7), u.StateVersion)
	assert.Equal(t, now, u.UpdatedAt)
}
