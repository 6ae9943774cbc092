package firewall

import (
	"fwgate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/netip"
	"testing"
)

func TestBuildIPRule(t *testing.T) {
	tests := []struct {
		name    string
		action  types.Action
		address string
		want    string
	}{
		{name: "ipv4 block", action: types.ActionBlock, address: "8.8.8.4", want: "8.8.8.4"},
		{name: "ipv6 allow", action: types.ActionAllow, address: "2001:db8::1", want: "2001:db8::1"},
		{name: "mapped ipv4 is unmapped", action: types.ActionBlock, address: "::ffff:10.0.0.1", want: "10.0.0.1"},
		{name: "surrounding space", action: types.ActionBlock, address: " 1.1.1.1 ", want: "1.1.1.1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rule, err := BuildIPRule(test.action, test.address, "")
			require.NoError(t, err)

			assert.Equal(t, test.action, rule.Action)
			assert.Equal(t, netip.MustParseAddr(test.want), rule.RemoteAddress)
			assert.Zero(t, rule.LocalPort)
			assert.False(t, rule.HasPort())
			assert.Equal(t, types.ProtocolAny, rule.Protocol)
			assert.Equal(t, types.DirectionInbound, rule.Direction)
			assert.Equal(t, GroupingTag, rule.GroupingTag)
			assert.True(t, rule.Enabled)
			assert.Contains(t, rule.Name, test.want)
			assert.Contains(t, rule.Name, string(test.action))
		})
	}
}

func TestBuildIPRule_Names(t *testing.T) {
	rule, err := BuildIPRule(types.ActionBlock, "8.8.8.4", "")
	require.NoError(t, err)
	assert.Equal(t, "Inbound block IP 8.8.8.4", rule.Name)
	assert.Equal(t, "Block inbound traffic from 8.8.8.4", rule.Description)

	rule, err = BuildIPRule(types.ActionAllow, "8.8.8.4", "office")
	require.NoError(t, err)
	assert.Equal(t, "office", rule.Name)
}

func TestBuildPortRule(t *testing.T) {
	for _, port := range []int{1, 80, 443, 8080, 65535} {
		rule, err := BuildPortRule(types.ActionAllow, port, "8.8.8.4", "")
		require.NoError(t, err)

		assert.Equal(t, uint16(port), rule.LocalPort)
		assert.Equal(t, netip.MustParseAddr("8.8.8.4"), rule.RemoteAddress)
		assert.Equal(t, types.ActionAllow, rule.Action)
		assert.Equal(t, types.ProtocolTCP, rule.Protocol)
		assert.True(t, rule.Enabled)
	}

	rule, err := BuildPortRule(types.ActionBlock, 80, "8.8.8.4", "")
	require.NoError(t, err)
	assert.Equal(t, "Inbound block IP 8.8.8.4 port 80", rule.Name)
	assert.Equal(t, "Block inbound traffic from 8.8.8.4 over TCP port 80", rule.Description)

	rule, err = BuildPortRule(types.ActionBlock, 22, "", "")
	require.NoError(t, err)
	assert.False(t, rule.HasAddress())
	assert.Equal(t, "Inbound block port 22", rule.Name)
}

func TestBuilders_RejectInvalidTargets(t *testing.T) {
	tests := []struct {
		name  string
		build func() (types.RuleDescriptor, error)
	}{
		{"port zero", func() (types.RuleDescriptor, error) {
			return BuildPortRule(types.ActionBlock, 0, "8.8.8.4", "")
		}},
		{"port too large", func() (types.RuleDescriptor, error) {
			return BuildPortRule(types.ActionBlock, 65536, "8.8.8.4", "")
		}},
		{"negative port", func() (types.RuleDescriptor, error) {
			return BuildPortRule(types.ActionAllow, -1, "8.8.8.4", "")
		}},
		{"malformed address", func() (types.RuleDescriptor, error) {
			return BuildIPRule(types.ActionBlock, "8.8.8", "")
		}},
		{"hostname", func() (types.RuleDescriptor, error) {
			return BuildIPRule(types.ActionBlock, "example.com", "")
		}},
		{"cidr", func() (types.RuleDescriptor, error) {
			return BuildIPRule(types.ActionBlock, "10.0.0.0/8", "")
		}},
		{"zoned address", func() (types.RuleDescriptor, error) {
			return BuildIPRule(types.ActionBlock, "fe80::1%eth0", "")
		}},
		{"missing address", func() (types.RuleDescriptor, error) {
			return BuildIPRule(types.ActionAllow, "", "")
		}},
		{"malformed address with port", func() (types.RuleDescriptor, error) {
			return BuildPortRule(types.ActionAllow, 80, "999.1.1.1", "")
		}},
		{"unknown action", func() (types.RuleDescriptor, error) {
			return BuildIPRule("permit", "8.8.8.4", "")
		}},
		{"empty intent", func() (types.RuleDescriptor, error) {
			return BuildIntent(types.Intent{Action: types.ActionAllow})
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.build()
			assert.ErrorIs(t, err, ErrInvalidTarget)
		})
	}
}

func TestBuildIntent(t *testing.T) {
	rule, err := BuildIntent(types.Intent{Action: types.ActionBlock, RemoteAddress: "8.8.8.4"})
	require.NoError(t, err)
	assert.False(t, rule.HasPort())

	rule, err = BuildIntent(types.Intent{Action: types.ActionBlock, RemoteAddress: "8.8.8.4", Port: 80})
	require.NoError(t, err)
	assert.Equal(t, uint16(80), rule.LocalPort)
	assert.Equal(t, types.ProtocolTCP, rule.Protocol)
}

func TestValidateDescriptor(t *testing.T) {
	assert.ErrorIs(t, validateDescriptor(types.RuleDescriptor{
		Name:      "too broad",
		Action:    types.ActionAllow,
		Direction: types.DirectionInbound,
		Protocol:  types.ProtocolAny,
	}), ErrInvalidTarget)

	assert.ErrorIs(t, validateDescriptor(types.RuleDescriptor{
		Action:    types.ActionAllow,
		Direction: types.DirectionInbound,
		Protocol:  types.ProtocolAny,
		LocalPort: 80,
	}), ErrInvalidTarget)

	assert.NoError(t, validateDescriptor(types.RuleDescriptor{
		Action:        types.ActionBlock,
		Direction:     types.DirectionOutbound,
		Protocol:      types.ProtocolUDP,
		LocalPort:     53,
		RemoteAddress: netip.MustParseAddr("9.9.9.9"),
	}))
}

func TestParsePort(t *testing.T) {
	port, err := ParsePort("443")
	require.NoError(t, err)
	assert.Equal(t, uint16(443), port)

	for _, value := range []string{"", "0", "65536", "-1", "http", "8.8.8.8"} {
		_, err := ParsePort(value)
		assert.ErrorIs(t, err, ErrInvalidTarget, value)
	}
}
