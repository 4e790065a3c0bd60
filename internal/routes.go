package internal

import (
	"guardian/internal/controllers"
	"guardian/internal/providers"
	"guardian/internal/structures"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/location", http.HandlerFunc(apiController.GetLocation))
	routers.Get("/api/history", http.HandlerFunc(apiController.GetHistory))
	routers.Post("/api/history/clear", http.HandlerFunc(apiController.ClearHistory))
	routers.Get("/api/history/export", http.HandlerFunc(apiController.ExportHistory))
	routers.Get("/api/zones", http.HandlerFunc(apiController.GetZones))
	routers.Post("/api/zones/create", http.HandlerFunc(apiController.CreateZone))
	routers.Delete("/api/zones/delete", http.HandlerFunc(apiController.DeleteZone))
	routers.Get("/api/favorites", http.HandlerFunc(apiController.GetFavorites))
	routers.Post("/api/favorites/add", http.HandlerFunc(apiController.AddFavorite))
	routers.Get("/api/share", http.HandlerFunc(apiController.GetShare))
	routers.Post("/api/share/start", http.HandlerFunc(apiController.StartShare))
	routers.Post("/api/share/stop", http.HandlerFunc(apiController.StopShare))
	routers.Get("/api/playback", http.HandlerFunc(apiController.GetPlayback))
	routers.Post("/api/playback/toggle", http.HandlerFunc(apiController.TogglePlayback))
	routers.Post("/api/playback/seek", http.HandlerFunc(apiController.SeekPlayback))
	routers.Post("/api/sos", http.HandlerFunc(apiController.TriggerSos))
	return routers
}
