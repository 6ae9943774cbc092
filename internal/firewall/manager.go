package firewall

import (
	"fmt"
	"fwgate/internal/types"
	"strings"
)

const (
	// GroupingTag is carried by every rule fwgate creates so they can be told
	// apart from unrelated firewall entries and removed in one pass.
	GroupingTag = "fwgate"

	BackendNFTables = "nftables"
	BackendIPTables = "iptables"
	BackendMemory   = "memory"

	defaultTableName = "fwgate"
	defaultChainName = "FWGATE"
)

type (
	// PolicyStore is the host firewall policy database. Implementations must be
	// safe for concurrent use; callers serialize mutations themselves.
	PolicyStore interface {
		// CurrentProfiles returns the network profiles active right now.
		CurrentProfiles() (types.Profile, error)
		ListOpenPorts() ([]types.OpenPort, error)
		OpenPort(port types.OpenPort) error
		ClosePort(port uint16, protocol types.Protocol) error
		// AddRule appends the rule. It does not look for an equivalent one.
		AddRule(rule types.RuleDescriptor) error
		ListRules(tag string) ([]types.RuleSummary, error)
		RemoveRulesByTag(tag string) (int, error)
	}

	// Opener performs the one-time connection to a policy store.
	Opener func() (PolicyStore, error)
)

// OpenerFor returns the opener of the named backend. Empty table and chain
// names fall back to the defaults.
func OpenerFor(backend, table, chain string) (Opener, error) {
	if table == "" {
		table = defaultTableName
	}
	if chain == "" {
		chain = defaultChainName
	}

	switch strings.ToLower(backend) {
	case "", BackendNFTables:
		return func() (PolicyStore, error) {
			return openNFTables(table)
		}, nil
	case BackendIPTables:
		return func() (PolicyStore, error) {
			return openIPTables(chain)
		}, nil
	case BackendMemory:
		return func() (PolicyStore, error) {
			return NewMemoryStore(), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown firewall backend: %s", backend)
	}
}
