package main

import (
	"context"
	"log/slog"
	"os"

	"checkpoint/config"
	"checkpoint/internal/delivery"
	"checkpoint/internal/delivery/http"
	"checkpoint/internal/delivery/http/router/handler"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/infra/geocode"
	"checkpoint/internal/infra/geolocation"
	logs "checkpoint/internal/infra/log"
	"checkpoint/internal/infra/notify"
	"checkpoint/internal/infra/persistence/postgres"
	"checkpoint/internal/infra/pubsub"
	"checkpoint/internal/infra/qrcode"
	"checkpoint/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewNominatimClient,
			geocode.NewMemoCache,
			geolocation.NewClient,
			notify.NewSlogNotifier,
			pubsub.NewEventPublisher,
			newGeocodingConfig,
			newQRCodeService,
		),
	)
}

// newGeocodingConfig exposes the geocoding section as its own dependency
func newGeocodingConfig(cfg *config.Config) *config.GeocodingConfig {
	return cfg.Geocoding
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEnrichmentService,
			impl.NewDiscoveryService,
			impl.NewMapViewService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewMapHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
