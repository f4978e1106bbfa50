package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

func ids(cs []*domain.Carton) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func score(j domain.Jornada, cs ...domain.Carton) []Scored {
	out := make([]Scored, 0, len(cs))
	for i := range cs {
		c := &cs[i]
		out = append(out, Scored{Carton: c, Eval: Evaluate(c, &j)})
	}
	return out
}

func TestThresholds(t *testing.T) {
	first, second := Thresholds(&domain.Jornada{Matches: make([]domain.Match, 3)})
	assert.Equal(t, 3, first)
	assert.Equal(t, 2, second)

	first, second = Thresholds(&domain.Jornada{Matches: make([]domain.Match, 1)})
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestResolveTiers(t *testing.T) {
	j := closedJornada("j1", H, D, A)
	j.BotinMatchID = j.Matches[2].ID
	j.BotinResult = strPtr("2-1")

	scored := score(j,
		withBotin(cartonFor("perfect", "u1", j, H, D, A), "2", "1"),
		cartonFor("perfect-no-botin", "u2", j, H, D, A),
		cartonFor("two", "u3", j, H, D, H),
		withBotin(cartonFor("wrong-botin", "u4", j, H, D, A), "1", "1"),
		cartonFor("one", "u5", j, A, A, A),
	)

	tiers := ResolveTiers(scored, &j)
	assert.Equal(t, []string{"perfect", "perfect-no-botin"}, ids(tiers.First))
	assert.Equal(t, []string{"two"}, ids(tiers.Second))
	assert.Equal(t, []string{"perfect"}, ids(tiers.Botin))
}

func TestResolveTiersMalformedBotinResult(t *testing.T) {
	j := closedJornada("j1", H, D)
	j.BotinResult = strPtr("2 a 1")

	tiers := ResolveTiers(score(j, withBotin(cartonFor("c1", "u1", j, H, D), "2", "1")), &j)
	assert.Empty(t, tiers.Botin)
	assert.Empty(t, tiers.First, "invalid carton never reaches a tier")
}
