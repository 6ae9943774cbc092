package firewall

import "fwgate/internal/types"

// insertIndex returns where a rule summarized by next goes in a chain whose
// rules are summarized by chain, one entry per rule, zero values for rules
// fwgate did not write. Netfilter chains stop at the first matching verdict,
// so block rules sit ahead of every allow rule and open port. Each group
// keeps submission order.
func insertIndex(chain []types.RuleSummary, next types.RuleSummary) int {
	if next.Action != types.ActionBlock {
		return len(chain)
	}

	idx := 0
	for i, r := range chain {
		if r.Tag != "" && r.Action == types.ActionBlock {
			idx = i + 1
		}
	}
	return idx
}
