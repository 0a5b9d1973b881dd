package bootstrap

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoetrack/shoetrack-ui/config"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/testutil"
)

func testConfig(baseURL string) *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Upstream.BaseURL = baseURL
	cfg.Session.SweepInterval = time.Minute
	cfg.Search.Debounce = time.Millisecond
	cfg.Sanitize()
	return cfg
}

func TestNewServices_InMemory(t *testing.T) {
	cfg := testConfig("http://records.invalid")
	cfg.Observability.Metrics.Enabled = false

	c, err := NewServices(ServiceDeps{Config: cfg, Logger: testutil.DiscardLogger()})
	require.NoError(t, err)
	assert.NotNil(t, c.Auth)
	assert.NotNil(t, c.Shoes)
	assert.NotNil(t, c.Models)
	assert.NotNil(t, c.Charts)
	assert.NotNil(t, c.Sweeper, "in-memory sessions need the reaper")
	assert.Nil(t, c.Prometheus)
}

func TestNewServices_Errors(t *testing.T) {
	_, err := NewServices(ServiceDeps{})
	require.Error(t, err)

	cfg := testConfig("ftp://records")
	_, err = NewServices(ServiceDeps{Config: cfg})
	require.Error(t, err)
}

func TestBuildHandler_ServesMetricsAndReadiness(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(upstream.Close)

	cfg := testConfig(upstream.URL)
	cfg.Observability.Metrics.Enabled = true
	c, err := NewServices(ServiceDeps{Config: cfg, Logger: testutil.DiscardLogger()})
	require.NoError(t, err)
	require.NotNil(t, c.Prometheus)

	h, err := BuildHandler(cfg, c, testutil.DiscardLogger())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shoetrack_http_request_duration_seconds")
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig("http://records.invalid")
	c, err := NewServices(ServiceDeps{Config: cfg, Logger: testutil.DiscardLogger()})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := NewServer(cfg.HTTP, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, ln, c, cfg, testutil.DiscardLogger()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNewServices_SessionEndReleasesChart(t *testing.T) {
	records := testutil.NewRecordServer(t)
	records.AddModel(testutil.NewShoeModel().WithName("Air Zoom").Fields())
	records.AddShoe("Air Zoom", "SN-1", "B-1", "admin", testutil.TestTime())

	cfg := testConfig(records.URL)
	c, err := NewServices(ServiceDeps{Config: cfg, Logger: testutil.DiscardLogger()})
	require.NoError(t, err)

	ctx := context.Background()
	out, err := c.Auth.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.NotNil(t, out.Session)
	sess := *out.Session

	_, err = c.Charts.Update(ctx, sess.ID, sess.Credentials(), model.ChartFilter{})
	require.NoError(t, err)
	_, live := c.Charts.Current(sess.ID)
	require.True(t, live)

	_, err = c.Auth.Logout(ctx, sess)
	require.NoError(t, err)
	_, live = c.Charts.Current(sess.ID)
	assert.False(t, live)
}
