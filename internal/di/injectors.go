//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"guardian/internal"
	"guardian/internal/controllers"
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/services"
	"guardian/internal/structures"
	"guardian/internal/tracking"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		tracking.NewSystemClock,
		tracking.NewSimulatedProvider,
		tracking.NewHistory,
		tracking.NewTracker,
		tracking.NewShareTransport,
		tracking.NewShareManager,
		tracking.NewPlaybackController,
		tracking.NewGzipCompressor,
		tracking.NewDeepLinkOpener,
		tracking.NewSosDispatcher,
		tracking.NewScheduler,
		models.NewFavoriteStore,

		services.NewTrackingService,
		services.NewShareService,
		services.NewPlaybackService,
		services.NewSosService,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
