//go:build linux

package firewall

import (
	"encoding/binary"
	"errors"
	"fmt"
	"fwgate/internal/types"
	"github.com/google/nftables"
	"github.com/google/nftables/expr"
	errorpkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"sync"
)

const (
	inputChainName  = "input"
	outputChainName = "output"
)

// nftStore keeps fwgate rules in a dedicated inet table with one filter chain
// per direction. Rule metadata lives in the rule user data.
type nftStore struct {
	mu     sync.Mutex
	conn   *nftables.Conn
	table  *nftables.Table
	input  *nftables.Chain
	output *nftables.Chain
}

func openNFTables(tableName string) (PolicyStore, error) {
	conn, err := nftables.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPolicyUnavailable, errorpkg.Wrap(err, "failed to open netlink connection"))
	}

	policy := nftables.ChainPolicyAccept
	table := conn.AddTable(&nftables.Table{
		Name:   tableName,
		Family: nftables.TableFamilyINet,
	})
	input := conn.AddChain(&nftables.Chain{
		Name:     inputChainName,
		Table:    table,
		Type:     nftables.ChainTypeFilter,
		Hooknum:  nftables.ChainHookInput,
		Priority: nftables.ChainPriorityFilter,
		Policy:   &policy,
	})
	output := conn.AddChain(&nftables.Chain{
		Name:     outputChainName,
		Table:    table,
		Type:     nftables.ChainTypeFilter,
		Hooknum:  nftables.ChainHookOutput,
		Priority: nftables.ChainPriorityFilter,
		Policy:   &policy,
	})

	if err := conn.Flush(); err != nil {
		return nil, unavailable(classify(err, "failed to create table "+tableName))
	}

	return &nftStore{
		conn:   conn,
		table:  table,
		input:  input,
		output: output,
	}, nil
}

func (n *nftStore) CurrentProfiles() (types.Profile, error) {
	// netfilter has no notion of network profiles, every rule applies to all.
	return types.ProfileAll, nil
}

func (n *nftStore) ListOpenPorts() ([]types.OpenPort, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	rules, err := n.conn.GetRules(n.table, n.input)
	if err != nil {
		return nil, classify(err, "failed to retrieve rules")
	}

	ports := make([]types.OpenPort, 0)
	for _, rule := range rules {
		s, ok := decodeComment(string(rule.UserData))
		if ok && s.Kind == types.KindOpenPort {
			ports = append(ports, summaryOpenPort(s))
		}
	}
	sortOpenPorts(ports)
	return ports, nil
}

func (n *nftStore) OpenPort(port types.OpenPort) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.conn.AddRule(&nftables.Rule{
		Table:    n.table,
		Chain:    n.input,
		Exprs:    openPortExprs(port),
		UserData: []byte(encodeComment(openPortSummary(port))),
	})
	if err := n.conn.Flush(); err != nil {
		return classify(err, fmt.Sprintf("failed to open port %d", port.Port))
	}
	return nil
}

func (n *nftStore) ClosePort(port uint16, protocol types.Protocol) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	rules, err := n.conn.GetRules(n.table, n.input)
	if err != nil {
		return classify(err, "failed to retrieve rules")
	}

	for _, rule := range rules {
		s, ok := decodeComment(string(rule.UserData))
		if !ok || s.Kind != types.KindOpenPort || s.LocalPort != port || s.Protocol != protocol {
			continue
		}
		if err := n.conn.DelRule(rule); err != nil {
			return classify(err, fmt.Sprintf("failed to close port %d", port))
		}
	}

	if err := n.conn.Flush(); err != nil {
		return classify(err, fmt.Sprintf("failed to close port %d", port))
	}
	return nil
}

func (n *nftStore) AddRule(rule types.RuleDescriptor) error {
	exprs, err := ruleExprs(rule)
	if err != nil {
		return err
	}

	chain := n.input
	if rule.Direction == types.DirectionOutbound {
		chain = n.output
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	existing, err := n.conn.GetRules(n.table, chain)
	if err != nil {
		return classify(err, "failed to retrieve rules")
	}
	summaries := make([]types.RuleSummary, len(existing))
	for i, r := range existing {
		summaries[i], _ = decodeComment(string(r.UserData))
	}

	next := &nftables.Rule{
		Table:    n.table,
		Chain:    chain,
		Exprs:    exprs,
		UserData: []byte(encodeComment(rule.Summary())),
	}
	switch idx := insertIndex(summaries, rule.Summary()); {
	case idx == len(existing):
		n.conn.AddRule(next)
	case idx == 0:
		n.conn.InsertRule(next)
	default:
		// added right after the rule at Position
		next.Position = existing[idx-1].Handle
		n.conn.AddRule(next)
	}

	if err := n.conn.Flush(); err != nil {
		return classify(err, "failed to add rule "+rule.Name)
	}
	return nil
}

func (n *nftStore) ListRules(tag string) ([]types.RuleSummary, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	result := make([]types.RuleSummary, 0)
	for _, chain := range []*nftables.Chain{n.input, n.output} {
		rules, err := n.conn.GetRules(n.table, chain)
		if err != nil {
			return nil, classify(err, "failed to retrieve rules")
		}

		for _, rule := range rules {
			if s, ok := decodeComment(string(rule.UserData)); ok && s.Tag == tag {
				result = append(result, s)
			}
		}
	}
	return result, nil
}

func (n *nftStore) RemoveRulesByTag(tag string) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	removed := 0
	for _, chain := range []*nftables.Chain{n.input, n.output} {
		rules, err := n.conn.GetRules(n.table, chain)
		if err != nil {
			return 0, classify(err, "failed to retrieve rules")
		}

		for _, rule := range rules {
			s, ok := decodeComment(string(rule.UserData))
			if !ok || s.Tag != tag {
				continue
			}
			if err := n.conn.DelRule(rule); err != nil {
				return 0, classify(err, "failed to delete rule "+s.Name)
			}
			removed++
		}
	}

	if err := n.conn.Flush(); err != nil {
		return 0, classify(err, "failed to remove rules tagged "+tag)
	}
	return removed, nil
}

// ruleExprs translates a descriptor into nftables expressions. A disabled
// rule gets no verdict so it only counts packets.
func ruleExprs(rule types.RuleDescriptor) ([]expr.Any, error) {
	exprs := make([]expr.Any, 0, 10)

	if rule.HasAddress() {
		addr := rule.RemoteAddress
		var (
			family byte
			offset uint32
		)
		switch {
		case addr.Is4() && rule.Direction == types.DirectionOutbound:
			family, offset = unix.NFPROTO_IPV4, 16
		case addr.Is4():
			family, offset = unix.NFPROTO_IPV4, 12
		case rule.Direction == types.DirectionOutbound:
			family, offset = unix.NFPROTO_IPV6, 24
		default:
			family, offset = unix.NFPROTO_IPV6, 8
		}

		raw := addr.AsSlice()
		exprs = append(exprs,
			&expr.Meta{Key: expr.MetaKeyNFPROTO, Register: 1},
			&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: []byte{family}},
			&expr.Payload{
				DestRegister: 1,
				Base:         expr.PayloadBaseNetworkHeader,
				Offset:       offset,
				Len:          uint32(len(raw)),
			},
			&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: raw},
		)
	}

	if rule.Protocol != types.ProtocolAny {
		proto, err := l4proto(rule.Protocol)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs,
			&expr.Meta{Key: expr.MetaKeyL4PROTO, Register: 1},
			&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: []byte{proto}},
		)
	}

	if rule.HasPort() {
		if rule.Protocol == types.ProtocolAny {
			return nil, invalidTarget("port %d needs tcp or udp", rule.LocalPort)
		}

		// inbound traffic reaches the local port as destination port
		var offset uint32 = 2
		if rule.Direction == types.DirectionOutbound {
			offset = 0
		}
		exprs = append(exprs,
			&expr.Payload{
				DestRegister: 1,
				Base:         expr.PayloadBaseTransportHeader,
				Offset:       offset,
				Len:          2,
			},
			&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: portBytes(rule.LocalPort)},
		)
	}

	exprs = append(exprs, &expr.Counter{})
	if !rule.Enabled {
		return exprs, nil
	}

	kind := expr.VerdictAccept
	if rule.Action == types.ActionBlock {
		kind = expr.VerdictDrop
	}
	return append(exprs, &expr.Verdict{Kind: kind}), nil
}

func openPortExprs(port types.OpenPort) []expr.Any {
	proto, err := l4proto(port.Protocol)
	if err != nil {
		proto = unix.IPPROTO_TCP
	}

	return []expr.Any{
		&expr.Meta{Key: expr.MetaKeyL4PROTO, Register: 1},
		&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: []byte{proto}},
		&expr.Payload{
			DestRegister: 1,
			Base:         expr.PayloadBaseTransportHeader,
			Offset:       2,
			Len:          2,
		},
		&expr.Cmp{Op: expr.CmpOpEq, Register: 1, Data: portBytes(port.Port)},
		&expr.Counter{},
		&expr.Verdict{Kind: expr.VerdictAccept},
	}
}

func l4proto(p types.Protocol) (byte, error) {
	switch p {
	case types.ProtocolTCP:
		return unix.IPPROTO_TCP, nil
	case types.ProtocolUDP:
		return unix.IPPROTO_UDP, nil
	default:
		return 0, invalidTarget("protocol %q has no layer 4 number", p)
	}
}

func portBytes(port uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, port)
	return b
}

// classify wraps a netlink error and tags it as a privilege or availability
// failure.
func classify(err error, message string) error {
	wrapped := errorpkg.Wrap(err, message)
	if errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, wrapped)
	}
	return fmt.Errorf("%w: %w", ErrPolicyUnavailable, wrapped)
}
