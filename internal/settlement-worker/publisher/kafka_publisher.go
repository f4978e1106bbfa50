package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

// KafkaPublisher publica os eventos de saída do worker. DLQ é opcional.
type KafkaPublisher struct {
	Settled *kafka.Writer
	Balance *kafka.Writer
	DLQ     *kafka.Writer
}

func NewKafkaPublisher(settled, balance, dlq *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Settled: settled, Balance: balance, DLQ: dlq}
}

func (p *KafkaPublisher) PublishSettled(ctx context.Context, e events.JornadaSettled) error {
	if e.Ts.IsZero() {
		e.Ts = time.Now()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.Settled.WriteMessages(ctx, kafka.Message{Key: []byte(e.JornadaID), Value: b, Time: e.Ts})
}

// PublishBalances envia os movimentos num único lote, chaveados por usuário
func (p *KafkaPublisher) PublishBalances(ctx context.Context, list []events.BalanceChanged) error {
	if len(list) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(list))
	for _, e := range list {
		if e.Ts.IsZero() {
			e.Ts = time.Now()
		}
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{Key: []byte(e.UserID), Value: b, Time: e.Ts})
	}
	return p.Balance.WriteMessages(ctx, msgs...)
}

func (p *KafkaPublisher) PublishDLQ(ctx context.Context, key string, payload []byte) error {
	if p.DLQ == nil {
		return nil
	}
	return p.DLQ.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload, Time: time.Now()})
}
