package tracking

import (
	"bytes"
	"fmt"
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/structures"
	"io"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// ShareTransport is the outbound push boundary of a live-share session.
// Both calls are fire-and-forget: no retry, no backoff.
type ShareTransport interface {
	PushLocation(sessionID string, p models.LocationPoint) error
	EndSession(sessionID string) error
}

// HTTPShareTransport posts session updates to a remote sharing channel.
type HTTPShareTransport struct {
	client *http.Client
	base   string
}

func NewShareTransport(conf *structures.Config, logger providers.Logger) ShareTransport {
	if conf.Share.PushEndpoint == "" {
		logger.Infof(providers.TypeShare, "no push endpoint configured, share updates stay local")
		return &logTransport{logger: logger}
	}

	return &HTTPShareTransport{
		base: conf.Share.PushEndpoint,
		client: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
				DialContext: (&net.Dialer{
					Timeout:   2 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (t *HTTPShareTransport) PushLocation(sessionID string, p models.LocationPoint) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return t.post(fmt.Sprintf("%s/share/%s/location", t.base, sessionID), body)
}

func (t *HTTPShareTransport) EndSession(sessionID string) error {
	return t.post(fmt.Sprintf("%s/share/%s/stop", t.base, sessionID), nil)
}

func (t *HTTPShareTransport) post(url string, body []byte) error {
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("push rejected: %s", resp.Status)
	}
	return nil
}

// logTransport records updates on the log stream when no remote channel is
// configured.
type logTransport struct {
	logger providers.Logger
}

func (t *logTransport) PushLocation(sessionID string, p models.LocationPoint) error {
	t.logger.Debugf(providers.TypeShare, "share %s update: %.6f, %.6f", sessionID, p.Latitude, p.Longitude)
	return nil
}

func (t *logTransport) EndSession(sessionID string) error {
	t.logger.Debugf(providers.TypeShare, "share %s ended", sessionID)
	return nil
}
