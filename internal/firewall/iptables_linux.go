//go:build linux

package firewall

import (
	"fmt"
	"fwgate/internal/types"
	"github.com/coreos/go-iptables/iptables"
	errorpkg "github.com/pkg/errors"
	"strconv"
	"strings"
	"sync"
)

const filterTable = "filter"

// iptStore keeps fwgate rules in two chains of the filter table, <chain>-IN
// jumped to from INPUT and <chain>-OUT from OUTPUT, for IPv4 and IPv6 alike.
// Rule metadata lives in the comment match.
type iptStore struct {
	mu    sync.Mutex
	chain string
	v4    *iptables.IPTables
	v6    *iptables.IPTables
}

func openIPTables(chain string) (PolicyStore, error) {
	v4, err := iptables.NewWithProtocol(iptables.ProtocolIPv4)
	if err != nil {
		return nil, unavailable(errorpkg.Wrap(err, "failed to open iptables"))
	}

	s := &iptStore{chain: chain, v4: v4}
	// IPv6 rules are unavailable when ip6tables is missing, IPv4 still works.
	if v6, err := iptables.NewWithProtocol(iptables.ProtocolIPv6); err == nil {
		s.v6 = v6
	}

	for _, ipt := range s.tables() {
		if err := s.ensureChain(ipt, s.inChain(), "INPUT"); err != nil {
			return nil, unavailable(err)
		}
		if err := s.ensureChain(ipt, s.outChain(), "OUTPUT"); err != nil {
			return nil, unavailable(err)
		}
	}
	return s, nil
}

func (s *iptStore) inChain() string  { return s.chain + "-IN" }
func (s *iptStore) outChain() string { return s.chain + "-OUT" }

func (s *iptStore) tables() []*iptables.IPTables {
	if s.v6 == nil {
		return []*iptables.IPTables{s.v4}
	}
	return []*iptables.IPTables{s.v4, s.v6}
}

func (s *iptStore) ensureChain(ipt *iptables.IPTables, chain, parent string) error {
	exists, err := ipt.ChainExists(filterTable, chain)
	if err != nil {
		return classifyIPT(err, "failed to look up chain "+chain)
	}
	if !exists {
		if err := ipt.NewChain(filterTable, chain); err != nil {
			return classifyIPT(err, "failed to create chain "+chain)
		}
	}
	if err := ipt.AppendUnique(filterTable, parent, "-j", chain); err != nil {
		return classifyIPT(err, "failed to hook chain "+chain)
	}
	return nil
}

func (s *iptStore) CurrentProfiles() (types.Profile, error) {
	return types.ProfileAll, nil
}

func (s *iptStore) ListOpenPorts() ([]types.OpenPort, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// open ports are written to both families, read them back from IPv4 only
	entries, err := s.list(s.v4, s.inChain())
	if err != nil {
		return nil, err
	}

	ports := make([]types.OpenPort, 0)
	for _, e := range entries {
		if e.summary.Kind == types.KindOpenPort {
			ports = append(ports, summaryOpenPort(e.summary))
		}
	}
	sortOpenPorts(ports)
	return ports, nil
}

func (s *iptStore) OpenPort(port types.OpenPort) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec := []string{
		"-p", string(port.Protocol),
		"--dport", strconv.Itoa(int(port.Port)),
		"-m", "comment", "--comment", encodeComment(openPortSummary(port)),
		"-j", "ACCEPT",
	}
	for _, ipt := range s.tables() {
		if err := ipt.Append(filterTable, s.inChain(), spec...); err != nil {
			return classifyIPT(err, fmt.Sprintf("failed to open port %d", port.Port))
		}
	}
	return nil
}

func (s *iptStore) ClosePort(port uint16, protocol types.Protocol) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ipt := range s.tables() {
		entries, err := s.list(ipt, s.inChain())
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.summary.Kind != types.KindOpenPort || e.summary.LocalPort != port || e.summary.Protocol != protocol {
				continue
			}
			if err := ipt.Delete(filterTable, s.inChain(), e.spec...); err != nil {
				return classifyIPT(err, fmt.Sprintf("failed to close port %d", port))
			}
		}
	}
	return nil
}

func (s *iptStore) AddRule(rule types.RuleDescriptor) error {
	spec, err := ruleSpec(rule)
	if err != nil {
		return err
	}

	ipt := s.v4
	if rule.HasAddress() && rule.RemoteAddress.Is6() {
		if s.v6 == nil {
			return fmt.Errorf("%w: ip6tables is not available", ErrPolicyUnavailable)
		}
		ipt = s.v6
	}

	chain := s.inChain()
	if rule.Direction == types.DirectionOutbound {
		chain = s.outChain()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets := []*iptables.IPTables{ipt}
	if !rule.HasAddress() {
		targets = s.tables()
	}
	for _, t := range targets {
		summaries, err := s.chainSummaries(t, chain)
		if err != nil {
			return err
		}

		idx := insertIndex(summaries, rule.Summary())
		if idx == len(summaries) {
			err = t.Append(filterTable, chain, spec...)
		} else {
			err = t.Insert(filterTable, chain, idx+1, spec...)
		}
		if err != nil {
			return classifyIPT(err, "failed to add rule "+rule.Name)
		}
	}
	return nil
}

// chainSummaries returns one summary per rule of chain in evaluation order,
// zero values for rules fwgate did not write.
func (s *iptStore) chainSummaries(ipt *iptables.IPTables, chain string) ([]types.RuleSummary, error) {
	lines, err := ipt.List(filterTable, chain)
	if err != nil {
		return nil, classifyIPT(err, "failed to list chain "+chain)
	}

	summaries := make([]types.RuleSummary, 0, len(lines))
	for _, line := range lines {
		spec, ok := parseRuleLine(line, chain)
		if !ok {
			continue
		}
		summary, _ := decodeComment(commentOf(spec))
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *iptStore) ListRules(tag string) ([]types.RuleSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]types.RuleSummary, 0)
	for i, ipt := range s.tables() {
		for _, chain := range []string{s.inChain(), s.outChain()} {
			entries, err := s.list(ipt, chain)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				// rules without an address live in both families, report them once
				if i > 0 && e.summary.RemoteAddress == "" {
					continue
				}
				if e.summary.Tag == tag {
					result = append(result, e.summary)
				}
			}
		}
	}
	return result, nil
}

func (s *iptStore) RemoveRulesByTag(tag string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for i, ipt := range s.tables() {
		for _, chain := range []string{s.inChain(), s.outChain()} {
			entries, err := s.list(ipt, chain)
			if err != nil {
				return removed, err
			}
			for _, e := range entries {
				if e.summary.Tag != tag {
					continue
				}
				if err := ipt.Delete(filterTable, chain, e.spec...); err != nil {
					return removed, classifyIPT(err, "failed to delete rule "+e.summary.Name)
				}
				if i == 0 || e.summary.RemoteAddress != "" {
					removed++
				}
			}
		}
	}
	return removed, nil
}

type iptEntry struct {
	spec    []string
	summary types.RuleSummary
}

// list returns the fwgate rules of chain with their rule specs.
func (s *iptStore) list(ipt *iptables.IPTables, chain string) ([]iptEntry, error) {
	lines, err := ipt.List(filterTable, chain)
	if err != nil {
		return nil, classifyIPT(err, "failed to list chain "+chain)
	}

	entries := make([]iptEntry, 0, len(lines))
	for _, line := range lines {
		spec, ok := parseRuleLine(line, chain)
		if !ok {
			continue
		}
		comment := commentOf(spec)
		summary, ok := decodeComment(comment)
		if !ok {
			continue
		}
		entries = append(entries, iptEntry{spec: spec, summary: summary})
	}
	return entries, nil
}

// parseRuleLine turns an "-A CHAIN ..." line from iptables -S into a rule spec.
func parseRuleLine(line, chain string) ([]string, bool) {
	prefix := "-A " + chain + " "
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(line, prefix))
	for i, f := range fields {
		fields[i] = strings.Trim(f, `"`)
	}
	return fields, true
}

func commentOf(spec []string) string {
	for i := 0; i < len(spec)-1; i++ {
		if spec[i] == "--comment" {
			return spec[i+1]
		}
	}
	return ""
}

// ruleSpec translates a descriptor into iptables arguments. A disabled rule
// gets no target so it only counts packets.
func ruleSpec(rule types.RuleDescriptor) ([]string, error) {
	spec := make([]string, 0, 12)

	if rule.HasAddress() {
		flag := "-s"
		if rule.Direction == types.DirectionOutbound {
			flag = "-d"
		}
		spec = append(spec, flag, rule.RemoteAddress.String())
	}

	if rule.Protocol != types.ProtocolAny {
		spec = append(spec, "-p", string(rule.Protocol))
	}

	if rule.HasPort() {
		if rule.Protocol == types.ProtocolAny {
			return nil, invalidTarget("port %d needs tcp or udp", rule.LocalPort)
		}
		flag := "--dport"
		if rule.Direction == types.DirectionOutbound {
			flag = "--sport"
		}
		spec = append(spec, flag, strconv.Itoa(int(rule.LocalPort)))
	}

	spec = append(spec, "-m", "comment", "--comment", encodeComment(rule.Summary()))
	if !rule.Enabled {
		return spec, nil
	}

	target := "ACCEPT"
	if rule.Action == types.ActionBlock {
		target = "DROP"
	}
	return append(spec, "-j", target), nil
}

func classifyIPT(err error, message string) error {
	wrapped := errorpkg.Wrap(err, message)
	if strings.Contains(strings.ToLower(err.Error()), "permission denied") {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, wrapped)
	}
	return fmt.Errorf("%w: %w", ErrPolicyUnavailable, wrapped)
}
