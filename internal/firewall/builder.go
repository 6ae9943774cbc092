package firewall

import (
	"fmt"
	"fwgate/internal/types"
	"net/netip"
	"strconv"
	"strings"
)

// BuildIPRule describes an inbound rule for every port and protocol of a
// single remote address. An empty name gets a generated one.
func BuildIPRule(action types.Action, remoteAddress, name string) (types.RuleDescriptor, error) {
	if !action.Valid() {
		return types.RuleDescriptor{}, invalidTarget("unknown action %q", action)
	}

	if strings.TrimSpace(remoteAddress) == "" {
		return types.RuleDescriptor{}, invalidTarget("a remote IP address is required")
	}

	addr, err := parseRemoteAddress(remoteAddress)
	if err != nil {
		return types.RuleDescriptor{}, err
	}

	rule := types.RuleDescriptor{
		Name:          name,
		Description:   fmt.Sprintf("%s inbound traffic from %s", action.Title(), addr),
		Direction:     types.DirectionInbound,
		Protocol:      types.ProtocolAny,
		RemoteAddress: addr,
		Action:        action,
		Enabled:       true,
		GroupingTag:   GroupingTag,
	}
	if rule.Name == "" {
		rule.Name = fmt.Sprintf("%s %s IP %s", rule.Direction.Title(), action, addr)
	}
	return rule, nil
}

// BuildPortRule describes an inbound TCP rule for one local port. The remote
// address may be empty, in which case the rule covers every remote host.
func BuildPortRule(action types.Action, port int, remoteAddress, name string) (types.RuleDescriptor, error) {
	if !action.Valid() {
		return types.RuleDescriptor{}, invalidTarget("unknown action %q", action)
	}

	if port < 1 || port > 65535 {
		return types.RuleDescriptor{}, invalidTarget("port %d is outside 1-65535", port)
	}

	rule := types.RuleDescriptor{
		Name:        name,
		Direction:   types.DirectionInbound,
		Protocol:    types.ProtocolTCP,
		LocalPort:   uint16(port),
		Action:      action,
		Enabled:     true,
		GroupingTag: GroupingTag,
	}

	if strings.TrimSpace(remoteAddress) != "" {
		addr, err := parseRemoteAddress(remoteAddress)
		if err != nil {
			return types.RuleDescriptor{}, err
		}
		rule.RemoteAddress = addr
	}

	if rule.HasAddress() {
		rule.Description = fmt.Sprintf("%s inbound traffic from %s over TCP port %d", action.Title(), rule.RemoteAddress, port)
		if rule.Name == "" {
			rule.Name = fmt.Sprintf("%s %s IP %s port %d", rule.Direction.Title(), action, rule.RemoteAddress, port)
		}
	} else {
		rule.Description = fmt.Sprintf("%s inbound traffic over TCP port %d", action.Title(), port)
		if rule.Name == "" {
			rule.Name = fmt.Sprintf("%s %s port %d", rule.Direction.Title(), action, port)
		}
	}
	return rule, nil
}

// BuildIntent picks the IP or port builder depending on what the intent targets.
func BuildIntent(in types.Intent) (types.RuleDescriptor, error) {
	hasAddress := strings.TrimSpace(in.RemoteAddress) != ""
	switch {
	case !hasAddress && in.Port == 0:
		return types.RuleDescriptor{}, invalidTarget("a remote IP address or a port is required")
	case in.Port == 0:
		return BuildIPRule(in.Action, in.RemoteAddress, "")
	default:
		return BuildPortRule(in.Action, int(in.Port), in.RemoteAddress, "")
	}
}

// ParsePort reads a decimal port in the range 1-65535.
func ParsePort(value string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 16)
	if err != nil || n == 0 {
		return 0, invalidTarget("%q is not a port in 1-65535", value)
	}
	return uint16(n), nil
}

func parseRemoteAddress(value string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil {
		return netip.Addr{}, invalidTarget("%q is not an IP address", value)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, invalidTarget("%q carries an interface zone", value)
	}
	return addr.Unmap(), nil
}

// validateDescriptor checks a descriptor that may not have come from the
// builders before it is submitted.
func validateDescriptor(rule types.RuleDescriptor) error {
	if !rule.HasAddress() && !rule.HasPort() {
		return invalidTarget("rule %q matches every host and port", rule.Name)
	}
	if !rule.Action.Valid() {
		return invalidTarget("unknown action %q", rule.Action)
	}
	if rule.Direction != types.DirectionInbound && rule.Direction != types.DirectionOutbound {
		return invalidTarget("unknown direction %q", rule.Direction)
	}
	if !rule.Protocol.Valid() {
		return invalidTarget("unknown protocol %q", rule.Protocol)
	}
	if rule.HasPort() && rule.Protocol == types.ProtocolAny {
		return invalidTarget("port %d needs tcp or udp", rule.LocalPort)
	}
	return nil
}
