package controllers

import (
	"errors"
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/services"
	"guardian/internal/tracking"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger   providers.Logger
	tracking services.TrackingServiceInterface
	share    services.ShareServiceInterface
	playback services.PlaybackServiceInterface
	sos      services.SosServiceInterface
	cache    providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, trackingSvc services.TrackingServiceInterface, shareSvc services.ShareServiceInterface, playbackSvc services.PlaybackServiceInterface, sosSvc services.SosServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:   logger,
		tracking: trackingSvc,
		share:    shareSvc,
		playback: playbackSvc,
		sos:      sosSvc,
		cache:    cache,
	}
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, status int, msg string) {
	ac.writeJSON(w, status, map[string]string{"error": msg})
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetLocation(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.tracking.Current())
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "history", func() (any, error) {
		points := ac.tracking.History()
		return map[string]any{"points": points, "count": len(points)}, nil
	})
}

func (ac *ApiController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.tracking.ClearHistory(payload.Confirm); err != nil {
		ac.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ac.writeJSON(w, http.StatusOK, map[string]string{"message": "History cleared"})
}

func (ac *ApiController) ExportHistory(w http.ResponseWriter, r *http.Request) {
	data, err := ac.tracking.ExportHistory()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Set("Content-Disposition", `attachment; filename="location-history.json.gz"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (ac *ApiController) GetZones(w http.ResponseWriter, r *http.Request) {
	zones := ac.tracking.Zones()
	ac.writeJSON(w, http.StatusOK, map[string]any{"zones": zones, "count": len(zones)})
}

func (ac *ApiController) CreateZone(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload services.ZoneInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	zone, err := ac.tracking.AddZone(&payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidZone) {
			ac.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, http.StatusCreated, zone)
}

func (ac *ApiController) DeleteZone(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		ac.writeError(w, http.StatusBadRequest, "missing zone id")
		return
	}
	if !ac.tracking.RemoveZone(id) {
		ac.writeError(w, http.StatusNotFound, "zone not found")
		return
	}
	ac.writeJSON(w, http.StatusOK, map[string]string{"message": "Zone removed"})
}

func (ac *ApiController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := ac.tracking.Favorites()
	ac.writeJSON(w, http.StatusOK, map[string]any{"favorites": favorites, "count": len(favorites)})
}

func (ac *ApiController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	// empty or absent body means snapshot the current location
	_ = json.NewDecoder(r.Body).Decode(&payload)

	var point *models.LocationPoint
	if payload.Latitude != nil && payload.Longitude != nil {
		p := models.NewLocationPoint(*payload.Latitude, *payload.Longitude, time.Now())
		point = &p
	}
	saved := ac.tracking.AddFavorite(point)
	ac.writeJSON(w, http.StatusCreated, saved)
}

func (ac *ApiController) GetShare(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.share.Status())
}

func (ac *ApiController) StartShare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		DurationMs int64 `json:"durationMs"`
	}
	// empty body means default duration
	_ = json.NewDecoder(r.Body).Decode(&payload)

	result, err := ac.share.Start(time.Duration(payload.DurationMs) * time.Millisecond)
	if err != nil {
		if errors.Is(err, tracking.ErrShareActive) {
			ac.writeError(w, http.StatusConflict, err.Error())
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, http.StatusCreated, result)
}

func (ac *ApiController) StopShare(w http.ResponseWriter, r *http.Request) {
	ac.share.Stop()
	ac.writeJSON(w, http.StatusOK, map[string]string{"message": "Sharing stopped"})
}

func (ac *ApiController) GetPlayback(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.playback.State())
}

func (ac *ApiController) TogglePlayback(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.playback.Toggle())
}

func (ac *ApiController) SeekPlayback(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		Index *int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Index == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.writeJSON(w, http.StatusOK, ac.playback.Seek(*payload.Index))
}

func (ac *ApiController) TriggerSos(w http.ResponseWriter, r *http.Request) {
	result, err := ac.sos.Trigger()
	if err != nil {
		// silent SOS failure is unacceptable: tell the caller
		ac.writeError(w, http.StatusBadGateway, "unable to open an emergency channel, please call your emergency contacts")
		return
	}
	ac.writeJSON(w, http.StatusOK, result)
}
