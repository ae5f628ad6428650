package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"service-rental/internal/domain"
	"service-rental/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes moto.registered events.
type Producer struct {
	logger   logx.Logger
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a Producer. It returns nil without error when brokers
// or topic are not configured.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return newProducer(logger, p, topic), nil
}

func newProducer(logger logx.Logger, p sarama.SyncProducer, topic string) *Producer {
	return &Producer{logger: logger.With(logx.String("topic", topic)), producer: p, topic: topic}
}

// PublishMotoRegistered sends ev keyed by moto id. A nil Producer drops the event.
func (p *Producer) PublishMotoRegistered(ctx context.Context, ev domain.MotoRegistered) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(FromDomain(ev))
	if err != nil {
		return fmt.Errorf("marshal moto registered: %w", err)
	}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.MotoID.String()),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		return fmt.Errorf("send moto registered: %w", err)
	}
	p.logger.Debug("moto registered published",
		logx.String("moto_id", ev.MotoID.String()),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close closes the underlying producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
