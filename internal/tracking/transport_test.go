package tracking_test

import (
	"guardian/internal/models"
	"guardian/internal/testutil"
	"guardian/internal/tracking"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPShareTransport_PushLocation(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	var bodies [][]byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		paths = append(paths, r.URL.Path)
		bodies = append(bodies, body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	conf := testConfig()
	conf.Share.PushEndpoint = srv.URL
	transport := tracking.NewShareTransport(conf, &testutil.MockLogger{})

	point := models.NewLocationPoint(37.78825, -122.4324, time.Unix(100, 0))
	require.NoError(t, transport.PushLocation("s1", point))
	require.NoError(t, transport.EndSession("s1"))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"/share/s1/location", "/share/s1/stop"}, paths)

	var pushed models.LocationPoint
	require.NoError(t, json.Unmarshal(bodies[0], &pushed))
	assert.Equal(t, 37.78825, pushed.Latitude)
}

func TestHTTPShareTransport_RejectedPush(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	conf := testConfig()
	conf.Share.PushEndpoint = srv.URL
	transport := tracking.NewShareTransport(conf, &testutil.MockLogger{})

	err := transport.PushLocation("s1", models.NewLocationPoint(1, 2, time.Unix(0, 0)))
	assert.Error(t, err)
}

func TestNewShareTransport_NoEndpointStaysLocal(t *testing.T) {
	logger := &testutil.MockLogger{}
	transport := tracking.NewShareTransport(testConfig(), logger)

	require.NoError(t, transport.PushLocation("s1", models.NewLocationPoint(1, 2, time.Unix(0, 0))))
	require.NoError(t, transport.EndSession("s1"))
	assert.GreaterOrEqual(t, logger.CountByLevel("debug"), 2)
}
