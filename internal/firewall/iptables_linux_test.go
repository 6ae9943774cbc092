//go:build linux

package firewall

import (
	"fwgate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRuleSpec(t *testing.T) {
	rule, err := BuildPortRule(types.ActionBlock, 80, "8.8.8.4", "")
	require.NoError(t, err)

	spec, err := ruleSpec(rule)
	require.NoError(t, err)

	comment := encodeComment(rule.Summary())
	assert.Equal(t, []string{
		"-s", "8.8.8.4",
		"-p", "tcp",
		"--dport", "80",
		"-m", "comment", "--comment", comment,
		"-j", "DROP",
	}, spec)

	rule, err = BuildIPRule(types.ActionAllow, "2001:db8::1", "")
	require.NoError(t, err)
	rule.Direction = types.DirectionOutbound
	spec, err = ruleSpec(rule)
	require.NoError(t, err)
	assert.Equal(t, "-d", spec[0])
	assert.Equal(t, "ACCEPT", spec[len(spec)-1])

	rule.Enabled = false
	spec, err = ruleSpec(rule)
	require.NoError(t, err)
	assert.NotContains(t, spec, "-j")
}

func TestParseRuleLine(t *testing.T) {
	rule, err := BuildIPRule(types.ActionBlock, "192.0.2.7", "")
	require.NoError(t, err)
	comment := encodeComment(rule.Summary())

	line := `-A FWGATE-IN -s 192.0.2.7/32 -m comment --comment "` + comment + `" -j DROP`
	spec, ok := parseRuleLine(line, "FWGATE-IN")
	require.True(t, ok)
	assert.Equal(t, []string{"-s", "192.0.2.7/32", "-m", "comment", "--comment", comment, "-j", "DROP"}, spec)

	summary, ok := decodeComment(commentOf(spec))
	require.True(t, ok)
	assert.Equal(t, "192.0.2.7", summary.RemoteAddress)

	_, ok = parseRuleLine("-N FWGATE-IN", "FWGATE-IN")
	assert.False(t, ok)
	_, ok = parseRuleLine("-A INPUT -j FWGATE-IN", "FWGATE-IN")
	assert.False(t, ok)
}
