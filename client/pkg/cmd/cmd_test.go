package cmd

import (
	"bytes"
	"context"
	"fwgate/client/internal/config"
	"fwgate/internal/dispatch"
	"fwgate/internal/firewall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestRoot(t *testing.T) (*firewall.Applier, func(args ...string) (string, error)) {
	t.Helper()
	cfg := config.Config{Backend: firewall.BackendMemory}
	applier, err := NewLocalApplier(cfg)
	require.NoError(t, err)

	run := func(args ...string) (string, error) {
		root := NewRootCmd(applier, cfg)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}
	return applier, run
}

func TestRootCmd_Dispatch(t *testing.T) {
	applier, run := newTestRoot(t)

	_, err := run("-B", "8.8.8.4", "80")
	require.NoError(t, err)
	_, err = run("8.8.8.4")
	require.NoError(t, err)

	rules, err := applier.Rules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Inbound block IP 8.8.8.4 port 80", rules[0].Name)
	assert.Equal(t, "Inbound allow IP 8.8.8.4", rules[1].Name)
}

func TestRootCmd_ExitCodes(t *testing.T) {
	_, run := newTestRoot(t)

	_, err := run()
	assert.ErrorIs(t, err, dispatch.ErrUsage)
	assert.Equal(t, 2, dispatch.ExitCode(err))

	_, err = run("-h")
	assert.ErrorIs(t, err, dispatch.ErrHelp)
	assert.Equal(t, 0, dispatch.ExitCode(err))

	_, err = run("80")
	assert.ErrorIs(t, err, firewall.ErrInvalidTarget)
	assert.Equal(t, 1, dispatch.ExitCode(err))

	_, err = run("-Block", "80")
	assert.NoError(t, err)
}

func TestRootCmd_Subcommands(t *testing.T) {
	applier, run := newTestRoot(t)

	_, err := run("ports", "open", "8080", "--name", "web")
	require.NoError(t, err)
	open, err := applier.IsPortOpen(context.Background(), 8080)
	require.NoError(t, err)
	assert.True(t, open)

	_, err = run("-B", "10.0.0.1")
	require.NoError(t, err)

	out, err := run("rules", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Inbound block IP 10.0.0.1")
	assert.Contains(t, out, "web")

	_, err = run("rules", "purge", "--yes")
	require.NoError(t, err)
	rules, err := applier.Rules(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rules)

	_, err = run("ports", "close", "http")
	assert.ErrorIs(t, err, firewall.ErrInvalidTarget)
}
