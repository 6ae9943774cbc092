package types

import (
	"fmt"
	"net/netip"
	"strings"
)

type (
	Action    string
	Direction string
	Protocol  string
	RuleKind  string

	// Profile is a bitmask of the network profiles a rule applies to.
	Profile uint8
)

const (
	ActionAllow Action = "allow"
	ActionBlock Action = "block"

	DirectionInbound  Direction = "in"
	DirectionOutbound Direction = "out"

	ProtocolAny Protocol = "any"
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"

	// KindRule marks an address/port scoped rule, KindOpenPort an entry in the
	// global open ports table.
	KindRule     RuleKind = "rule"
	KindOpenPort RuleKind = "open-port"
)

const (
	ProfileDomain Profile = 1 << iota
	ProfilePrivate
	ProfilePublic

	ProfileAll = ProfileDomain | ProfilePrivate | ProfilePublic
)

type (
	// RuleDescriptor is one firewall rule prior to submission. A zero
	// RemoteAddress means every remote host, a zero LocalPort every port.
	RuleDescriptor struct {
		Name          string     `json:"name"`
		Description   string     `json:"description"`
		Direction     Direction  `json:"direction"`
		Protocol      Protocol   `json:"protocol"`
		RemoteAddress netip.Addr `json:"remote_address"`
		LocalPort     uint16     `json:"local_port,omitempty"`
		Action        Action     `json:"action"`
		Enabled       bool       `json:"enabled"`
		Profiles      Profile    `json:"profiles"`
		GroupingTag   string     `json:"grouping_tag"`
	}

	// OpenPort is one entry of the global open ports table.
	OpenPort struct {
		Port     uint16   `json:"port"`
		Protocol Protocol `json:"protocol"`
		Name     string   `json:"name"`
	}

	// RuleSummary is what a policy store reports back about a tagged rule.
	RuleSummary struct {
		Kind          RuleKind  `json:"kind"`
		Name          string    `json:"name"`
		Tag           string    `json:"tag"`
		Action        Action    `json:"action"`
		Direction     Direction `json:"direction"`
		Protocol      Protocol  `json:"protocol"`
		RemoteAddress string    `json:"remote_address,omitempty"`
		LocalPort     uint16    `json:"local_port,omitempty"`
		Enabled       bool      `json:"enabled"`
	}

	// Intent is a normalized (action, target) pair from the CLI or a remote caller.
	Intent struct {
		Action        Action `json:"action"`
		RemoteAddress string `json:"remote_address,omitempty"`
		Port          uint16 `json:"port,omitempty"`
	}
)

func (a Action) Valid() bool {
	return a == ActionAllow || a == ActionBlock
}

// Title returns the capitalized action, e.g "Block".
func (a Action) Title() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

func (d Direction) Title() string {
	if d == DirectionOutbound {
		return "Outbound"
	}
	return "Inbound"
}

func (p Protocol) Valid() bool {
	return p == ProtocolAny || p == ProtocolTCP || p == ProtocolUDP
}

func (p Profile) String() string {
	if p == 0 {
		return "current"
	}

	names := make([]string, 0, 3)
	if p&ProfileDomain != 0 {
		names = append(names, "domain")
	}
	if p&ProfilePrivate != 0 {
		names = append(names, "private")
	}
	if p&ProfilePublic != 0 {
		names = append(names, "public")
	}
	return strings.Join(names, ",")
}

// HasAddress reports whether the rule is scoped to a single remote host.
func (r RuleDescriptor) HasAddress() bool {
	return r.RemoteAddress.IsValid()
}

// HasPort reports whether the rule is scoped to a single local port.
func (r RuleDescriptor) HasPort() bool {
	return r.LocalPort != 0
}

func (r RuleDescriptor) String() string {
	target := "*"
	if r.HasAddress() {
		target = r.RemoteAddress.String()
	}
	if r.HasPort() {
		target = fmt.Sprintf("%s:%d/%s", target, r.LocalPort, r.Protocol)
	}
	return fmt.Sprintf("%s %s %s", r.Direction, r.Action, target)
}

// Summary converts the descriptor into the shape a policy store reports.
func (r RuleDescriptor) Summary() RuleSummary {
	s := RuleSummary{
		Kind:      KindRule,
		Name:      r.Name,
		Tag:       r.GroupingTag,
		Action:    r.Action,
		Direction: r.Direction,
		Protocol:  r.Protocol,
		LocalPort: r.LocalPort,
		Enabled:   r.Enabled,
	}
	if r.HasAddress() {
		s.RemoteAddress = r.RemoteAddress.String()
	}
	return s
}
