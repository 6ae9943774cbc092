package firewall

import (
	"fwgate/internal/types"
	"net/url"
	"strconv"
)

// maxCommentLen is the limit nftables puts on rule user data and iptables on
// --comment. Names are shortened to fit.
const maxCommentLen = 255

// encodeComment renders the metadata stored next to each rule in the host
// firewall. Only the name is ever shortened.
func encodeComment(s types.RuleSummary) string {
	values := url.Values{}
	values.Set("k", string(s.Kind))
	values.Set("t", s.Tag)
	values.Set("a", string(s.Action))
	values.Set("d", string(s.Direction))
	values.Set("p", string(s.Protocol))
	if s.RemoteAddress != "" {
		values.Set("r", s.RemoteAddress)
	}
	if s.LocalPort != 0 {
		values.Set("l", strconv.Itoa(int(s.LocalPort)))
	}
	if s.Enabled {
		values.Set("e", "1")
	} else {
		values.Set("e", "0")
	}

	name := []rune(s.Name)
	for {
		values.Set("n", string(name))
		encoded := values.Encode()
		if len(encoded) <= maxCommentLen || len(name) == 0 {
			return encoded
		}
		name = name[:len(name)-1]
	}
}

// decodeComment parses a comment written by encodeComment. Comments of rules
// fwgate did not create report false.
func decodeComment(comment string) (types.RuleSummary, bool) {
	values, err := url.ParseQuery(comment)
	if err != nil {
		return types.RuleSummary{}, false
	}

	kind := types.RuleKind(values.Get("k"))
	if kind != types.KindRule && kind != types.KindOpenPort {
		return types.RuleSummary{}, false
	}
	if values.Get("t") == "" {
		return types.RuleSummary{}, false
	}

	s := types.RuleSummary{
		Kind:          kind,
		Name:          values.Get("n"),
		Tag:           values.Get("t"),
		Action:        types.Action(values.Get("a")),
		Direction:     types.Direction(values.Get("d")),
		Protocol:      types.Protocol(values.Get("p")),
		RemoteAddress: values.Get("r"),
		Enabled:       values.Get("e") == "1",
	}
	if l := values.Get("l"); l != "" {
		port, err := strconv.ParseUint(l, 10, 16)
		if err != nil {
			return types.RuleSummary{}, false
		}
		s.LocalPort = uint16(port)
	}
	return s, true
}

func openPortSummary(port types.OpenPort) types.RuleSummary {
	return types.RuleSummary{
		Kind:      types.KindOpenPort,
		Name:      port.Name,
		Tag:       GroupingTag,
		Action:    types.ActionAllow,
		Direction: types.DirectionInbound,
		Protocol:  port.Protocol,
		LocalPort: port.Port,
		Enabled:   true,
	}
}

func summaryOpenPort(s types.RuleSummary) types.OpenPort {
	return types.OpenPort{
		Port:     s.LocalPort,
		Protocol: s.Protocol,
		Name:     s.Name,
	}
}
