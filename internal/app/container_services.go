package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-rental/internal/logx"
	"service-rental/internal/repository"
	"service-rental/internal/service/courier"
	"service-rental/internal/service/licenseimage"
	"service-rental/internal/service/moto"
	"service-rental/internal/service/uniqueness"
	"service-rental/internal/storage"
	"service-rental/internal/validation"
)

type guardIn struct {
	dig.In

	Conflicts *prometheus.CounterVec `name:"uniqueness_conflicts_total"`
}

type licenseImageIn struct {
	dig.In

	Couriers *repository.CourierRepo
	Storage  storage.Storage
	Attached *prometheus.CounterVec `name:"license_images_attached_total"`
	Logger   logx.Logger
	Timeout  operationTimeout
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewCourierRepo,
		repository.NewMotoRepo,
		validation.New,
		func(in guardIn) *uniqueness.Guard { return uniqueness.NewGuard(in.Conflicts) },
		func(
			repo *repository.CourierRepo,
			v *validation.Validator,
			g *uniqueness.Guard,
			logger logx.Logger,
			timeout operationTimeout,
		) *courier.Service {
			return courier.NewService(repo, v, g, logger, time.Duration(timeout))
		},
		func(
			repo *repository.MotoRepo,
			v *validation.Validator,
			g *uniqueness.Guard,
			p moto.Publisher,
			logger logx.Logger,
			timeout operationTimeout,
		) *moto.Service {
			return moto.NewService(repo, v, g, p, logger, time.Duration(timeout))
		},
		func(in licenseImageIn) *licenseimage.Service {
			return licenseimage.NewService(in.Couriers, in.Storage, in.Attached, in.Logger, time.Duration(in.Timeout))
		},
	)
}
