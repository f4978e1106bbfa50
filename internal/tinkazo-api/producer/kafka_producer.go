package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

type KafkaPublisher struct {
	Results *kafka.Writer
	Balance *kafka.Writer
}

func NewKafkaPublisher(results, balance *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Results: results, Balance: balance}
}

func (p *KafkaPublisher) PublishResults(ctx context.Context, e events.JornadaResultsPosted) error {
	if e.Ts.IsZero() {
		e.Ts = time.Now()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.Results.WriteMessages(ctx, kafka.Message{Key: []byte(e.JornadaID), Value: b})
}

func (p *KafkaPublisher) PublishBalance(ctx context.Context, e events.BalanceChanged) error {
	if e.Ts.IsZero() {
		e.Ts = time.Now()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.Balance.WriteMessages(ctx, kafka.Message{Key: []byte(e.UserID), Value: b})
}
