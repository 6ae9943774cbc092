package firewall

import (
	"context"
	"errors"
	"fwgate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func newTestApplier(t *testing.T) (*Applier, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	handle := NewPolicyHandle(func() (PolicyStore, error) {
		return store, nil
	})
	return NewApplier(handle, nil), store
}

func TestApplier_ApplyRuleIsAppendOnly(t *testing.T) {
	applier, store := newTestApplier(t)
	ctx := context.Background()

	rule, err := BuildIPRule(types.ActionBlock, "8.8.8.4", "")
	require.NoError(t, err)

	require.NoError(t, applier.ApplyRule(ctx, rule))
	require.NoError(t, applier.ApplyRule(ctx, rule))

	rules := store.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, rules[0], rules[1])
}

func TestApplier_ApplyRuleInheritsProfiles(t *testing.T) {
	applier, store := newTestApplier(t)
	store.SetProfiles(types.ProfilePrivate | types.ProfilePublic)

	rule, err := BuildIPRule(types.ActionAllow, "10.1.2.3", "")
	require.NoError(t, err)
	require.NoError(t, applier.ApplyRule(context.Background(), rule))

	assert.Equal(t, types.ProfilePrivate|types.ProfilePublic, store.Rules()[0].Profiles)
}

func TestApplier_ApplyRuleRejectsBroadRule(t *testing.T) {
	var opened bool
	handle := NewPolicyHandle(func() (PolicyStore, error) {
		opened = true
		return NewMemoryStore(), nil
	})
	applier := NewApplier(handle, nil)

	err := applier.ApplyRule(context.Background(), types.RuleDescriptor{
		Action:    types.ActionAllow,
		Direction: types.DirectionInbound,
		Protocol:  types.ProtocolAny,
		Enabled:   true,
	})
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.False(t, opened, "validation must fail before the store is touched")
}

func TestApplier_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable store", func(t *testing.T) {
		applier := NewApplier(NewPolicyHandle(func() (PolicyStore, error) {
			return nil, errors.New("no firewall service")
		}), nil)

		err := applier.BlockIP(ctx, "8.8.8.4")
		assert.ErrorIs(t, err, ErrPolicyUnavailable)

		_, err = applier.IsPortOpen(ctx, 80)
		assert.ErrorIs(t, err, ErrPolicyUnavailable)
	})

	t.Run("permission denied", func(t *testing.T) {
		applier, store := newTestApplier(t)
		store.FailMutations(ErrPermissionDenied)

		err := applier.AllowPort(ctx, 443, "8.8.8.4")
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Empty(t, store.Rules())
	})

	t.Run("unclassified store failure", func(t *testing.T) {
		applier, store := newTestApplier(t)
		store.FailMutations(errors.New("boom"))

		err := applier.BlockIP(ctx, "8.8.8.4")
		assert.ErrorIs(t, err, ErrPolicyUnavailable)
	})

	t.Run("canceled before submission", func(t *testing.T) {
		applier, store := newTestApplier(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := applier.BlockIP(canceled, "8.8.8.4")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, store.Rules())
	})
}

func TestApplier_IsPortOpenIsReadOnly(t *testing.T) {
	applier, _ := newTestApplier(t)
	ctx := context.Background()
	require.NoError(t, applier.OpenPort(ctx, 8080, "web"))

	before, err := applier.OpenPorts(ctx)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		open, err := applier.IsPortOpen(ctx, 8080)
		require.NoError(t, err)
		assert.True(t, open)

		open, err = applier.IsPortOpen(ctx, 9090)
		require.NoError(t, err)
		assert.False(t, open)
	}

	after, err := applier.OpenPorts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplier_OpenPortIsIdempotent(t *testing.T) {
	applier, _ := newTestApplier(t)
	ctx := context.Background()

	require.NoError(t, applier.OpenPort(ctx, 80, "http"))
	open, err := applier.IsPortOpen(ctx, 80)
	require.NoError(t, err)
	assert.True(t, open)
	first, err := applier.OpenPorts(ctx)
	require.NoError(t, err)

	require.NoError(t, applier.OpenPort(ctx, 80, "http"))
	open, err = applier.IsPortOpen(ctx, 80)
	require.NoError(t, err)
	assert.True(t, open)
	second, err := applier.OpenPorts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []types.OpenPort{{Port: 80, Protocol: types.ProtocolTCP, Name: "http"}}, second)
}

func TestApplier_ClosePort(t *testing.T) {
	applier, _ := newTestApplier(t)
	ctx := context.Background()

	// closing a port that is not open is a no-op
	require.NoError(t, applier.ClosePort(ctx, 80))

	require.NoError(t, applier.OpenPort(ctx, 80, ""))
	require.NoError(t, applier.OpenPort(ctx, 22, ""))
	require.NoError(t, applier.ClosePort(ctx, 80))

	ports, err := applier.OpenPorts(ctx)
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.Equal(t, uint16(22), ports[0].Port)
	assert.Equal(t, "fwgate port 22", ports[0].Name)

	assert.ErrorIs(t, applier.ClosePort(ctx, 0), ErrInvalidTarget)
	assert.ErrorIs(t, applier.OpenPort(ctx, 0, ""), ErrInvalidTarget)
}

func TestApplier_PortStateIgnoresProtocol(t *testing.T) {
	applier, store := newTestApplier(t)
	ctx := context.Background()
	dns := types.OpenPort{Port: 53, Protocol: types.ProtocolUDP, Name: "dns"}
	require.NoError(t, store.OpenPort(dns))

	open, err := applier.IsPortOpen(ctx, 53)
	require.NoError(t, err)
	assert.True(t, open)

	// a port open over udp already counts as open
	require.NoError(t, applier.OpenPort(ctx, 53, "dns-tcp"))
	ports, err := applier.OpenPorts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.OpenPort{dns}, ports)

	// only the tcp entry is ever removed
	require.NoError(t, applier.ClosePort(ctx, 53))
	ports, err = applier.OpenPorts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.OpenPort{dns}, ports)
}

func TestApplier_RulesAndRemoveRules(t *testing.T) {
	applier, store := newTestApplier(t)
	ctx := context.Background()

	require.NoError(t, applier.BlockIP(ctx, "8.8.8.4"))
	require.NoError(t, applier.AllowPort(ctx, 443, "2001:db8::7"))
	require.NoError(t, applier.OpenPort(ctx, 8080, "web"))

	foreign, err := BuildIPRule(types.ActionBlock, "1.1.1.1", "")
	require.NoError(t, err)
	foreign.GroupingTag = "someone-else"
	require.NoError(t, store.AddRule(foreign))

	rules, err := applier.Rules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "8.8.8.4", rules[0].RemoteAddress)
	assert.Equal(t, types.KindRule, rules[1].Kind)
	assert.Equal(t, uint16(443), rules[1].LocalPort)
	assert.Equal(t, types.KindOpenPort, rules[2].Kind)

	n, err := applier.RemoveRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	remaining := store.Rules()
	require.Len(t, remaining, 1)
	assert.Equal(t, "someone-else", remaining[0].GroupingTag)
}

func TestApplier_Apply(t *testing.T) {
	applier, store := newTestApplier(t)

	rule, err := applier.Apply(context.Background(), types.Intent{
		Action:        types.ActionBlock,
		RemoteAddress: "8.8.8.4",
		Port:          80,
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(80), rule.LocalPort)
	assert.Len(t, store.Rules(), 1)

	_, err = applier.Apply(context.Background(), types.Intent{Action: types.ActionAllow})
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Len(t, store.Rules(), 1)
}

func TestApplier_ConcurrentUse(t *testing.T) {
	applier, store := newTestApplier(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, applier.BlockIP(ctx, "192.0.2.1"))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, applier.OpenPort(ctx, 8443, "tls"))
			_, err := applier.IsPortOpen(ctx, 8443)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.Rules(), 50)
	ports, err := store.ListOpenPorts()
	require.NoError(t, err)
	assert.Len(t, ports, 1)
}
