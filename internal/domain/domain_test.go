package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcome(o Outcome) *Outcome { return &o }

func TestJornadaReadyForSettlement(t *testing.T) {
	base := func() Jornada {
		return Jornada{
			ID:     "j1",
			Status: JornadaClosed,
			Matches: []Match{
				{ID: "m1", Result: outcome(OutcomeHome)},
				{ID: "m2", Result: outcome(OutcomeAway)},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(j *Jornada)
		want   bool
	}{
		{name: "closed and resolved", mutate: func(*Jornada) {}, want: true},
		{name: "still open", mutate: func(j *Jornada) { j.Status = JornadaOpen }, want: false},
		{name: "cancelled", mutate: func(j *Jornada) { j.Status = JornadaCancelled }, want: false},
		{name: "missing result", mutate: func(j *Jornada) { j.Matches[1].Result = nil }, want: false},
		{name: "already processed", mutate: func(j *Jornada) { j.ResultsProcessed = true }, want: false},
		{name: "no matches", mutate: func(j *Jornada) { j.Matches = nil }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := base()
			tt.mutate(&j)
			assert.Equal(t, tt.want, j.ReadyForSettlement())
		})
	}
}

func TestJornadaLockDeadline(t *testing.T) {
	first := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	j := Jornada{
		Status: JornadaOpen,
		Matches: []Match{
			{ID: "m1", DateTime: first.Add(2 * time.Hour)},
			{ID: "m2", DateTime: first},
		},
	}

	deadline, ok := j.LockDeadline()
	require.True(t, ok)
	assert.Equal(t, first.Add(-10*time.Minute), deadline)

	assert.True(t, j.AcceptsPlays(first.Add(-11*time.Minute)))
	assert.False(t, j.AcceptsPlays(first.Add(-10*time.Minute)))
	assert.False(t, j.AcceptsPlays(first))

	j.Status = JornadaClosed
	assert.False(t, j.AcceptsPlays(first.Add(-time.Hour)))
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	hits := 2
	prize := 10.0
	botin := "2-1"
	snap := &Snapshot{
		Jornadas: []Jornada{{
			ID:          "j1",
			Matches:     []Match{{ID: "m1", Result: outcome(OutcomeDraw)}},
			BotinResult: &botin,
		}},
		Cartons: []Carton{{
			ID:              "c1",
			Predictions:     map[string]Outcome{"m1": OutcomeDraw},
			BotinPrediction: &BotinPrediction{LocalScore: "2", VisitorScore: "1"},
			Hits:            &hits,
			PrizeWon:        &prize,
			PrizeDetails:    &PrizeDetails{Jornada: &TierPrize{Tier: 1, WinnersCount: 1}},
		}},
		Users: []RegisteredUser{{ID: "u1", Balance: 5}},
	}

	cp := snap.Clone()
	*cp.Jornadas[0].Matches[0].Result = OutcomeAway
	*cp.Jornadas[0].BotinResult = "0-0"
	cp.Cartons[0].Predictions["m1"] = OutcomeHome
	cp.Cartons[0].BotinPrediction.LocalScore = "9"
	*cp.Cartons[0].Hits = 0
	*cp.Cartons[0].PrizeWon = 0
	cp.Cartons[0].PrizeDetails.Jornada.Tier = 2
	cp.Users[0].Balance = 100

	assert.Equal(t, OutcomeDraw, *snap.Jornadas[0].Matches[0].Result)
	assert.Equal(t, "2-1", *snap.Jornadas[0].BotinResult)
	assert.Equal(t, OutcomeDraw, snap.Cartons[0].Predictions["m1"])
	assert.Equal(t, "2", snap.Cartons[0].BotinPrediction.LocalScore)
	assert.Equal(t, 2, *snap.Cartons[0].Hits)
	assert.Equal(t, 10.0, *snap.Cartons[0].PrizeWon)
	assert.Equal(t, 1, snap.Cartons[0].PrizeDetails.Jornada.Tier)
	assert.Equal(t, 5.0, snap.Users[0].Balance)
}

func TestPrizeDetailsEmpty(t *testing.T) {
	var nilDetails *PrizeDetails
	assert.True(t, nilDetails.Empty())
	assert.True(t, (&PrizeDetails{}).Empty())
	assert.False(t, (&PrizeDetails{Botin: &PoolPrize{WinnersCount: 1}}).Empty())
}
