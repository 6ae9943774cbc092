package api

import (
	"context"
	"fmt"
	"fwgate/internal/firewall"
	"fwgate/internal/httphandlers"
	fwservice "fwgate/internal/service"
	"fwgate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http/httptest"
	"testing"
)

func newTestService(t *testing.T, key string) (Service, *firewall.MemoryStore) {
	t.Helper()
	store := firewall.NewMemoryStore()
	handle := firewall.NewPolicyHandle(func() (firewall.PolicyStore, error) { return store, nil })
	control := fwservice.NewControl(firewall.NewApplier(handle, nil), nil)

	srv := httptest.NewServer(httphandlers.Routes(httphandlers.NewApiHandler(control, "k", zap.NewNop())))
	t.Cleanup(srv.Close)
	return NewService(NewClient(srv.URL, key)), store
}

func TestService_Intents(t *testing.T) {
	svc, store := newTestService(t, "k")
	ctx := context.Background()

	require.NoError(t, svc.Ping(ctx))

	out, err := svc.BlockPort(ctx, types.ControlRequest{RemoteAddress: "8.8.8.4", Port: 80})
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, out.Status)
	assert.Equal(t, "blocked 8.8.8.4 on port 80", out.Message)

	out, err = svc.AllowIP(ctx, types.ControlRequest{})
	require.NoError(t, err, "a validation failure is an outcome, not a transport error")
	assert.Equal(t, types.StatusValidationError, out.Status)

	store.FailMutations(fmt.Errorf("%w: not root", firewall.ErrPermissionDenied))
	out, err = svc.BlockIP(ctx, types.ControlRequest{RemoteAddress: "8.8.8.4"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusPermissionError, out.Status)

	rules, err := svc.ListRules(ctx)
	require.NoError(t, err)
	assert.Len(t, rules.Rules, 1)

	port, err := svc.PortStatus(ctx, 80)
	require.NoError(t, err)
	assert.False(t, port.Open)
}

func TestService_Unauthorized(t *testing.T) {
	svc, _ := newTestService(t, "wrong")

	_, err := svc.BlockIP(context.Background(), types.ControlRequest{RemoteAddress: "8.8.8.4"})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.StatusCode)
	assert.Equal(t, "invalid access key", statusErr.Message)

	assert.Error(t, svc.Ping(context.Background()))
}
