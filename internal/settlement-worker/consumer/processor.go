package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/jackpot"
	"github.com/radieske/tinkazo-platform/internal/settlement"
	"github.com/radieske/tinkazo-platform/internal/settlement-worker/lock"
	"github.com/radieske/tinkazo-platform/internal/store"
	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

// MaxAttempts de uma mensagem antes de ir para a DLQ
const MaxAttempts = 3

var errNothingToSettle = errors.New("nothing to settle")

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Locker interface {
	Acquire(ctx context.Context) (string, error)
	Release(ctx context.Context, token string) error
}

type Publisher interface {
	PublishSettled(ctx context.Context, e events.JornadaSettled) error
	PublishBalances(ctx context.Context, list []events.BalanceChanged) error
	PublishDLQ(ctx context.Context, key string, payload []byte) error
}

type JackpotCache interface {
	SetCurrent(ctx context.Context, u events.JackpotUpdate) error
}

type JackpotBroadcaster interface {
	Publish(ctx context.Context, u events.JackpotUpdate) error
}

// Processor consome eventos de resultados do Kafka e executa a liquidação
// sobre o snapshot persistido. Um ticker de varredura garante que nenhuma
// jornada fechada fique sem liquidar se um evento se perder.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Processor struct {
	Log         *zap.Logger
	Reader      MessageReader
	Store       store.Store
	Engine      *settlement.Engine
	Lock        Locker
	Publisher   Publisher
	Cache       JackpotCache
	Broadcaster JackpotBroadcaster

	SweepInterval time.Duration // 0 desliga a varredura
	RetryBackoff  time.Duration // espera base entre tentativas
	Now           func() time.Time

	OnConsumed func()                  // métricas (counter++)
	OnSettled  func(settlement.Report) // métricas por jornada
	OnError    func(string)            // métricas por fase
}

// Run inicia a varredura periódica e o loop principal de consumo
func (p *Processor) Run(ctx context.Context) error {
	if p.SweepInterval > 0 {
		go p.sweep(ctx)
	}

	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			p.fail("read")
			if !wait(ctx, 500*time.Millisecond) {
				return ctx.Err()
			}
			continue
		}
		if p.OnConsumed != nil {
			p.OnConsumed()
		}
		p.Handle(ctx, m)
	}
}

// Handle processa uma mensagem de resultados. Falhas de decode são
// descartadas; falhas de liquidação vão para a DLQ após MaxAttempts.
func (p *Processor) Handle(ctx context.Context, m kafka.Message) {
	var ev events.JornadaResultsPosted
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		p.Log.Warn("invalid message", zap.Error(err))
		p.fail("decode")
		return
	}
	log := p.Log.With(zap.String("jornada_id", ev.JornadaID))
	if !ev.Complete {
		log.Debug("partial results, nothing to settle")
		return
	}

	var err error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if _, err = p.Settle(ctx, "event"); err == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		log.Warn("settlement attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		if !wait(ctx, p.backoff(attempt)) {
			return
		}
	}

	if errors.Is(err, lock.ErrNotAcquired) {
		// outra passada está rodando; a varredura cobre esta jornada
		log.Info("settlement busy, deferring to sweep")
		return
	}
	p.fail("settle")
	if dlqErr := p.Publisher.PublishDLQ(ctx, ev.JornadaID, m.Value); dlqErr != nil {
		log.Error("dlq publish failed", zap.Error(dlqErr))
		p.fail("dlq")
	}
}

// Settle executa uma passada completa: trava, liquida o que estiver pronto,
// grava com checagem de versão e só então publica os efeitos
func (p *Processor) Settle(ctx context.Context, trigger string) ([]settlement.Report, error) {
	token, err := p.Lock.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		// o release não deve herdar um ctx já cancelado
		rctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := p.Lock.Release(rctx, token); err != nil {
			p.Log.Warn("lock release failed", zap.Error(err))
		}
	}()

	var reports []settlement.Report
	snap, err := store.Update(ctx, p.Store, func(s *domain.Snapshot) error {
		if !settlement.Pending(s) {
			return errNothingToSettle
		}
		out, reps := p.Engine.Settle(s)
		*s = *out
		reports = reps
		return nil
	})
	if errors.Is(err, errNothingToSettle) {
		return nil, nil
	}
	if err != nil {
		p.fail("store")
		return nil, err
	}

	p.Log.Info("settlement pass committed",
		zap.String("trigger", trigger),
		zap.Int("jornadas", len(reports)),
		zap.Int64("state_version", snap.Version),
	)
	p.publish(ctx, snap, reports)
	return reports, nil
}

// publish roda depois do commit; falhas aqui não desfazem a liquidação
func (p *Processor) publish(ctx context.Context, snap *domain.Snapshot, reports []settlement.Report) {
	now := p.now()
	for _, rep := range reports {
		if p.OnSettled != nil {
			p.OnSettled(rep)
		}
		if err := p.Publisher.PublishSettled(ctx, settledEvent(rep, snap.Version, now)); err != nil {
			p.Log.Warn("publish jornada_settled failed", zap.String("jornada_id", rep.JornadaID), zap.Error(err))
			p.fail("publish")
		}
		if err := p.Publisher.PublishBalances(ctx, balanceEvents(rep, now)); err != nil {
			p.Log.Warn("publish balance_changed failed", zap.String("jornada_id", rep.JornadaID), zap.Error(err))
			p.fail("publish")
		}
	}
	p.RefreshJackpot(ctx, snap)
}

// RefreshJackpot grava os acumulados no cache e avisa o feed em tempo real
func (p *Processor) RefreshJackpot(ctx context.Context, snap *domain.Snapshot) {
	u := jackpot.FromSnapshot(snap, p.now())
	if p.Cache != nil {
		if err := p.Cache.SetCurrent(ctx, u); err != nil {
			p.Log.Warn("jackpot cache set failed", zap.Error(err))
			p.fail("cache")
		}
	}
	if p.Broadcaster != nil {
		if err := p.Broadcaster.Publish(ctx, u); err != nil {
			p.Log.Warn("jackpot broadcast failed", zap.Error(err))
			p.fail("broadcast")
		}
	}
}

func (p *Processor) sweep(ctx context.Context) {
	t := time.NewTicker(p.SweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := p.Settle(ctx, "sweep"); err != nil && !errors.Is(err, lock.ErrNotAcquired) && ctx.Err() == nil {
				p.Log.Warn("sweep failed", zap.Error(err))
			}
		}
	}
}

func settledEvent(rep settlement.Report, version int64, now time.Time) events.JornadaSettled {
	return events.JornadaSettled{
		JornadaID:         rep.JornadaID,
		Gordito:           rep.Gordito,
		Cartons:           rep.Cartons,
		InvalidCartons:    rep.InvalidCartons,
		FirstTierWinners:  rep.FirstTierWinners,
		SecondTierWinners: rep.SecondTierWinners,
		BotinWinners:      rep.BotinWinners,
		RolledOver:        rep.RolledOver,
		BotinPaid:         rep.BotinPaid,
		BotinAfter:        rep.BotinAfter,
		StateVersion:      version,
		Ts:                now,
	}
}

func balanceEvents(rep settlement.Report, now time.Time) []events.BalanceChanged {
	out := make([]events.BalanceChanged, 0, len(rep.Credits))
	for _, c := range rep.Credits {
		out = append(out, events.BalanceChanged{
			UserID:     c.UserID,
			Amount:     c.Amount,
			NewBalance: c.NewBalance,
			Reason:     events.ReasonPrize,
			Ref:        c.CartonID,
			Ts:         now,
		})
	}
	return out
}

func (p *Processor) backoff(attempt int) time.Duration {
	base := p.RetryBackoff
	if base <= 0 {
		base = 300 * time.Millisecond
	}
	return time.Duration(attempt) * base
}

// wait dorme d ou até o ctx ser cancelado; false indica cancelamento
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Processor) fail(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}
