package settlement

import (
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/ledger"
)

// RolloverShare é a fração da venda de uma jornada sem ganhador de 1ª
// faixa que vai para o Botín
const RolloverShare = 0.70

// Credit é um crédito de prêmio aplicado ao saldo de um usuário
type Credit struct {
	UserID     string  `json:"userId"`
	CartonID   string  `json:"cartonId"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"newBalance"`
}

// Report resume a liquidação de uma jornada
type Report struct {
	JornadaID         string   `json:"jornadaId"`
	Gordito           bool     `json:"gordito"`
	Cartons           int      `json:"cartons"`
	InvalidCartons    int      `json:"invalidCartons"`
	FirstPrizePool    float64  `json:"firstPrizePool"`
	SecondPrizePool   float64  `json:"secondPrizePool"`
	FirstTierWinners  int      `json:"firstTierWinners"`
	SecondTierWinners int      `json:"secondTierWinners"`
	BotinWinners      int      `json:"botinWinners"`
	RolledOver        float64  `json:"rolledOver"`
	BotinPaid         float64  `json:"botinPaid"`
	BotinAfter        float64  `json:"botinAfter"`
	Credits           []Credit `json:"credits,omitempty"`
	Orphaned          []string `json:"orphaned,omitempty"`
}

// Engine executa a liquidação das jornadas fechadas.
// É puro sobre o snapshot: recebe uma entrada e devolve uma cópia nova.
type Engine struct {
	log *zap.Logger
}

// NewEngine cria o engine; log nil vira um logger mudo
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// Settle liquida, em ordem, toda jornada elegível do snapshot e devolve o
// novo snapshot com os relatórios. Jornadas não elegíveis são ignoradas,
// então chamar de novo sobre a saída não muda nada.
func (e *Engine) Settle(in *domain.Snapshot) (*domain.Snapshot, []Report) {
	out := in.Clone()
	var reports []Report
	for i := range out.Jornadas {
		j := &out.Jornadas[i]
		if !j.ReadyForSettlement() {
			continue
		}
		reports = append(reports, e.settleJornada(out, j))
	}
	return out, reports
}

// Pending indica se existe ao menos uma jornada pronta para liquidar
func Pending(s *domain.Snapshot) bool {
	for i := range s.Jornadas {
		if s.Jornadas[i].ReadyForSettlement() {
			return true
		}
	}
	return false
}

func (e *Engine) settleJornada(s *domain.Snapshot, j *domain.Jornada) Report {
	// trava de idempotência: primeira mutação da jornada
	j.ResultsProcessed = true

	rep := Report{JornadaID: j.ID, Gordito: s.GorditoJornadaID != "" && s.GorditoJornadaID == j.ID}
	log := e.log.With(zap.String("jornada_id", j.ID), zap.Bool("gordito", rep.Gordito))

	idx := s.CartonsOf(j.ID)
	rep.Cartons = len(idx)
	if len(idx) == 0 {
		rep.BotinAfter = s.BotinAmount
		log.Info("jornada settled without cartons")
		return rep
	}

	scored := make([]Scored, 0, len(idx))
	for _, i := range idx {
		c := &s.Cartons[i]
		ev := Evaluate(c, j)
		if !ev.Valid {
			rep.InvalidCartons++
		}
		hits := ev.Hits
		zero := 0.0
		c.Hits = &hits
		c.PrizeWon = &zero
		c.PrizeDetails = &domain.PrizeDetails{}
		scored = append(scored, Scored{Carton: c, Eval: ev})
	}

	if rep.Gordito {
		rep.FirstPrizePool = ParseAmount(s.GorditoAmount)
		if rep.FirstPrizePool == 0 {
			log.Warn("gordito amount resolved to zero", zap.String("raw", s.GorditoAmount))
		}
	} else {
		rep.FirstPrizePool = ParseAmount(j.FirstPrize)
		if rep.FirstPrizePool == 0 {
			log.Warn("first prize resolved to zero", zap.String("raw", j.FirstPrize))
		}
	}
	rep.SecondPrizePool = ParseAmount(j.SecondPrize)

	tiers := ResolveTiers(scored, j)
	rep.FirstTierWinners = len(tiers.First)
	rep.SecondTierWinners = len(tiers.Second)
	rep.BotinWinners = len(tiers.Botin)

	// 1ª faixa
	if n := len(tiers.First); n > 0 {
		share := rep.FirstPrizePool / float64(n)
		for _, c := range tiers.First {
			addPrize(c, share)
			if rep.Gordito {
				c.PrizeDetails.Gordito = &domain.PoolPrize{WinnersCount: n}
			} else {
				c.PrizeDetails.Jornada = &domain.TierPrize{Tier: 1, WinnersCount: n}
			}
		}
	} else if !rep.Gordito {
		rep.RolledOver = RolloverShare * float64(len(idx)) * j.CartonPrice
		s.BotinAmount += rep.RolledOver
	}

	// 2ª faixa; nunca rebaixa uma marca de 1ª faixa
	if n := len(tiers.Second); n > 0 {
		share := rep.SecondPrizePool / float64(n)
		for _, c := range tiers.Second {
			addPrize(c, share)
			if c.PrizeDetails.Jornada == nil || c.PrizeDetails.Jornada.Tier != 1 {
				c.PrizeDetails.Jornada = &domain.TierPrize{Tier: 2, WinnersCount: n}
			}
		}
	}

	// Botín: consome a bolsa inteira quando há ganhador
	if n := len(tiers.Botin); n > 0 && s.BotinAmount > 0 {
		pool := s.BotinAmount
		share := pool / float64(n)
		for _, c := range tiers.Botin {
			addPrize(c, share)
			c.PrizeDetails.Botin = &domain.PoolPrize{WinnersCount: n}
		}
		rep.BotinPaid = pool
		s.BotinAmount = 0
	}
	rep.BotinAfter = s.BotinAmount

	for _, i := range idx {
		c := &s.Cartons[i]
		if amount := c.Prize(); amount > 0 {
			u, ok := s.User(c.UserID)
			if !ok {
				rep.Orphaned = append(rep.Orphaned, c.ID)
				log.Warn("prize owner not found", zap.String("carton_id", c.ID), zap.String("user_id", c.UserID))
			} else if err := ledger.Credit(u, amount); err != nil {
				rep.Orphaned = append(rep.Orphaned, c.ID)
				log.Warn("prize credit rejected", zap.String("carton_id", c.ID), zap.Error(err))
			} else {
				rep.Credits = append(rep.Credits, Credit{
					UserID:     u.ID,
					CartonID:   c.ID,
					Amount:     amount,
					NewBalance: u.Balance,
				})
			}
		}
		if c.PrizeDetails.Empty() {
			c.PrizeDetails = nil
		}
	}

	log.Info("jornada settled",
		zap.Int("cartons", rep.Cartons),
		zap.Int("invalid", rep.InvalidCartons),
		zap.Int("first_tier", rep.FirstTierWinners),
		zap.Int("second_tier", rep.SecondTierWinners),
		zap.Int("botin_winners", rep.BotinWinners),
		zap.Float64("rolled_over", rep.RolledOver),
		zap.Float64("botin_paid", rep.BotinPaid),
		zap.Float64("botin_after", rep.BotinAfter),
	)
	return rep
}

func addPrize(c *domain.Carton, amount float64) {
	total := c.Prize() + amount
	c.PrizeWon = &total
}
