//go:build !linux

package firewall

import "fmt"

func openNFTables(string) (PolicyStore, error) {
	return nil, fmt.Errorf("%w: the nftables backend requires linux", ErrPolicyUnavailable)
}

func openIPTables(string) (PolicyStore, error) {
	return nil, fmt.Errorf("%w: the iptables backend requires linux", ErrPolicyUnavailable)
}
