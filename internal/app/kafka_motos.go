package app

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-rental/internal/config"
	"service-rental/internal/domain"
	"service-rental/internal/logx"
	"service-rental/internal/repository"
	"service-rental/internal/service/moto"
	"service-rental/internal/service/notification"
	"service-rental/internal/transport/kafka"
)

func registerProducer(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) (*kafka.Producer, error) {
			return kafka.NewProducer(logger, cfg.Kafka.Brokers, cfg.Kafka.MotoTopic)
		},
		motoPublisher,
	)
}

// motoPublisher keeps a missing producer as a nil interface so the moto
// service skips publishing.
func motoPublisher(p *kafka.Producer) moto.Publisher {
	if p == nil {
		return nil
	}
	return p
}

type processorIn struct {
	dig.In

	Cfg      *config.Config
	Logger   logx.Logger
	Repo     *repository.NotificationRepo
	Notified prometheus.Counter `name:"moto_notifications_total"`
}

func newProcessor(in processorIn) *notification.Processor {
	return notification.NewProcessor(in.Repo, in.Cfg.NotifyYear, in.Notified, in.Logger)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewNotificationRepo,
		newProcessor,
		makeMotoHandler,
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.MotoTopic, h)
		},
	)
}

// makeMotoHandler adapts the processor to the consumer. Events the processor
// rejects as invalid are marked permanent so the consumer skips them.
func makeMotoHandler(p *notification.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event domain.MotoRegistered) error {
		err := p.Handle(ctx, event)
		if errors.Is(err, notification.ErrInvalidEvent) {
			return kafka.Permanent(err)
		}
		return err
	}
}
