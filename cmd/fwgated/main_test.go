package main

import (
	"context"
	"fwgate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testConfig() config.Config {
	return config.Config{
		Backend:   "memory",
		Table:     "fwgate",
		Chain:     "FWGATE",
		HTTPAddr:  "127.0.0.1:0",
		GRPCAddr:  "127.0.0.1:0",
		AccessKey: "k",
		LogMode:   "quiet",
	}
}

func TestSetup(t *testing.T) {
	d, err := setup(testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/ip/block", strings.NewReader(`{"remote_address":"8.8.8.4"}`))
	req.Header.Set("X-Access-Token", "k")
	rec := httptest.NewRecorder()
	d.http.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rules, err := d.applier.Rules(context.Background())
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}

func TestSetup_UnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Backend = "pf"
	_, err := setup(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	d, err := setup(testConfig(), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not stop")
	}
}
