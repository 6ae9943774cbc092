package rpc

import (
	"context"
	"fmt"
	"fwgate/internal/firewall"
	"fwgate/internal/service"
	"fwgate/internal/types"
	"fwgate/pkg/fwgatepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"net"
	"testing"
)

const testKey = "s3cret"

func startServer(t *testing.T) (*firewall.MemoryStore, func(key string) *Client) {
	store, conn := startServerConn(t)
	dial := func(key string) *Client {
		c, err := Dial("passthrough:///bufnet", key, conn...)
		require.NoError(t, err)
		t.Cleanup(func() { _ = c.Close() })
		return c
	}
	return store, dial
}

// startServerConn serves a FirewallControl over an in-memory listener and
// returns the dial options that reach it.
func startServerConn(t *testing.T) (*firewall.MemoryStore, []grpc.DialOption) {
	t.Helper()
	store := firewall.NewMemoryStore()
	handle := firewall.NewPolicyHandle(func() (firewall.PolicyStore, error) { return store, nil })
	control := service.NewControl(firewall.NewApplier(handle, zap.NewNop()), zap.NewNop())

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(control, testKey, zap.NewNop())
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	return store, []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
}

func TestClient_Intents(t *testing.T) {
	store, dial := startServer(t)
	c := dial(testKey)
	ctx := context.Background()

	out, err := c.BlockIP(ctx, types.ControlRequest{Action: types.ActionBlock, RemoteAddress: "8.8.8.4"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, out.Status, out.Message)

	out, err = c.AllowPort(ctx, types.ControlRequest{RemoteAddress: "8.8.8.4", Port: 443})
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, out.Status, out.Message)

	out, err = c.BlockPort(ctx, types.ControlRequest{RemoteAddress: "2001:db8::1", Port: 22})
	require.NoError(t, err)
	assert.True(t, out.OK())

	out, err = c.AllowIP(ctx, types.ControlRequest{RemoteAddress: "10.0.0.1"})
	require.NoError(t, err)
	assert.True(t, out.OK())

	assert.Len(t, store.Rules(), 4)

	rules, err := c.ListRules(ctx)
	require.NoError(t, err)
	assert.True(t, rules.OK())
	assert.Len(t, rules.Rules, 4)
}

func TestClient_OutcomesNotStatuses(t *testing.T) {
	store, dial := startServer(t)
	c := dial(testKey)
	ctx := context.Background()

	out, err := c.BlockIP(ctx, types.ControlRequest{})
	require.NoError(t, err)
	assert.Equal(t, types.StatusValidationError, out.Status)
	assert.Empty(t, store.Rules())

	store.FailMutations(fmt.Errorf("%w: operation not permitted", firewall.ErrPermissionDenied))
	out, err = c.BlockIP(ctx, types.ControlRequest{RemoteAddress: "8.8.8.4"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusPermissionError, out.Status)
}

func TestClient_PortStatus(t *testing.T) {
	store, dial := startServer(t)
	require.NoError(t, store.OpenPort(types.OpenPort{Port: 8080, Protocol: types.ProtocolTCP, Name: "web"}))
	c := dial(testKey)

	reply, err := c.PortStatus(context.Background(), 8080)
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.True(t, reply.Open)
	assert.Equal(t, 8080, reply.Port)

	reply, err = c.PortStatus(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, types.StatusValidationError, reply.Status)
}

func TestClient_PortOutOfRange(t *testing.T) {
	store, dial := startServer(t)
	c := dial(testKey)
	ctx := context.Background()

	for _, port := range []int{70000, -1} {
		out, err := c.BlockPort(ctx, types.ControlRequest{RemoteAddress: "8.8.8.4", Port: port})
		require.NoError(t, err)
		assert.Equal(t, types.StatusValidationError, out.Status, port)
		assert.NotEmpty(t, out.Message)
	}
	assert.Empty(t, store.Rules())
}

func TestFirewallControl_GeneratedStub(t *testing.T) {
	store, opts := startServerConn(t)
	conn, err := grpc.NewClient("passthrough:///bufnet", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	stub := fwgatepb.NewFirewallControlClient(conn)
	ctx := metadata.AppendToOutgoingContext(context.Background(), accessKeyMetadata, testKey)

	out, err := stub.BlockPort(ctx, &fwgatepb.ControlRequest{RemoteAddress: "8.8.8.4", Port: 70000})
	require.NoError(t, err)
	assert.Equal(t, string(types.StatusValidationError), out.GetStatus())
	assert.Empty(t, store.Rules())

	out, err = stub.BlockPort(ctx, &fwgatepb.ControlRequest{Action: "block", RemoteAddress: "8.8.8.4", Port: 80})
	require.NoError(t, err)
	assert.Equal(t, string(types.StatusOK), out.GetStatus(), out.GetMessage())

	rules, err := stub.ListRules(ctx, &fwgatepb.ListRulesRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(types.StatusOK), rules.GetOutcome().GetStatus())
	require.Len(t, rules.GetRules(), 1)
	assert.Equal(t, "8.8.8.4", rules.GetRules()[0].GetRemoteAddress())
	assert.Equal(t, uint32(80), rules.GetRules()[0].GetLocalPort())
	assert.Equal(t, "block", rules.GetRules()[0].GetAction())

	_, err = stub.ListRules(context.Background(), &fwgatepb.ListRulesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestClient_AccessKey(t *testing.T) {
	_, dial := startServer(t)

	for _, key := range []string{"", "wrong"} {
		_, err := dial(key).BlockIP(context.Background(), types.ControlRequest{RemoteAddress: "8.8.8.4"})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	}
}
