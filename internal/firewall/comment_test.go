package firewall

import (
	"fwgate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestComment_Decode(t *testing.T) {
	rule, err := BuildPortRule(types.ActionBlock, 80, "8.8.8.4", "")
	require.NoError(t, err)

	comment := encodeComment(rule.Summary())
	assert.NotContains(t, comment, " ", "comments must survive iptables -S tokenizing")

	got, ok := decodeComment(comment)
	require.True(t, ok)
	assert.Equal(t, rule.Summary(), got)
}

func TestComment_LongNamesAreShortened(t *testing.T) {
	rule, err := BuildIPRule(types.ActionBlock, "2001:db8::1", strings.Repeat("ü", 300))
	require.NoError(t, err)

	comment := encodeComment(rule.Summary())
	assert.LessOrEqual(t, len(comment), maxCommentLen)

	got, ok := decodeComment(comment)
	require.True(t, ok)
	assert.NotEmpty(t, got.Name)
	assert.True(t, strings.HasPrefix(rule.Name, got.Name))
	assert.Equal(t, "2001:db8::1", got.RemoteAddress)
}

func TestComment_ForeignComments(t *testing.T) {
	for _, comment := range []string{
		"",
		"tailscale-lockout-protection",
		"k=rule",
		"k=other&t=fwgate",
		"k=rule&t=fwgate&l=99999",
		"%zz",
	} {
		_, ok := decodeComment(comment)
		assert.False(t, ok, comment)
	}
}

func TestComment_OpenPort(t *testing.T) {
	port := types.OpenPort{Port: 8080, Protocol: types.ProtocolTCP, Name: "web admin"}

	got, ok := decodeComment(encodeComment(openPortSummary(port)))
	require.True(t, ok)
	assert.Equal(t, types.KindOpenPort, got.Kind)
	assert.Equal(t, GroupingTag, got.Tag)
	assert.Equal(t, port, summaryOpenPort(got))
}
