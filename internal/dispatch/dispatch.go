package dispatch

import (
	"context"
	"errors"
	"fmt"
	"fwgate/internal/firewall"
	"fwgate/internal/types"
	"net/netip"
	"strings"
)

var (
	ErrUsage = errors.New("usage error")
	ErrHelp  = errors.New("help requested")
)

const Usage = `Usage: fwgate [-B|-Block] <ip> [port]
       fwgate [-B|-Block] <port>

Without -B the target is allowed, with -B it is blocked.
  <ip>          allow or block all inbound traffic from the address
  <ip> <port>   allow or block inbound TCP traffic from the address to the port
  -B <port>     close the port in the global open ports table

Other commands:
  fwgate rules list|purge
  fwgate ports list|open|close
  fwgate remote <block-ip|allow-ip|block-port|allow-port> <ip> [port]
  fwgate login
`

// Applier is the part of firewall.Applier the dispatcher drives.
type Applier interface {
	BlockIP(ctx context.Context, address string) error
	AllowIP(ctx context.Context, address string) error
	BlockPort(ctx context.Context, port uint16, address string) error
	AllowPort(ctx context.Context, port uint16, address string) error
	ClosePort(ctx context.Context, port uint16) error
}

var _ Applier = (*firewall.Applier)(nil)

// Parse turns raw arguments into an intent. The block flag may appear
// anywhere; the first address and the first port in range win, anything
// else is ignored.
func Parse(tokens []string) (types.Intent, error) {
	in := types.Intent{Action: types.ActionAllow}
	var haveAddress, havePort bool

	for _, token := range tokens {
		switch strings.ToLower(token) {
		case "-b", "-block":
			in.Action = types.ActionBlock
			continue
		case "/?", "-?", "-h", "--help":
			return in, ErrHelp
		}

		if !haveAddress {
			if addr, err := netip.ParseAddr(token); err == nil {
				in.RemoteAddress = addr.String()
				haveAddress = true
				continue
			}
		}

		if !havePort {
			if port, err := firewall.ParsePort(token); err == nil {
				in.Port = port
				havePort = true
			}
		}
	}

	if !haveAddress && !havePort {
		return in, ErrUsage
	}
	return in, nil
}

// Dispatch routes an intent to the applier and returns a one-line
// description of what was done.
func Dispatch(ctx context.Context, in types.Intent, a Applier) (string, error) {
	block := in.Action == types.ActionBlock
	hasAddress := in.RemoteAddress != ""
	hasPort := in.Port != 0

	switch {
	case hasAddress && hasPort:
		if block {
			return fmt.Sprintf("blocked %s on port %d", in.RemoteAddress, in.Port), a.BlockPort(ctx, in.Port, in.RemoteAddress)
		}
		return fmt.Sprintf("allowed %s on port %d", in.RemoteAddress, in.Port), a.AllowPort(ctx, in.Port, in.RemoteAddress)
	case hasAddress:
		if block {
			return fmt.Sprintf("blocked %s", in.RemoteAddress), a.BlockIP(ctx, in.RemoteAddress)
		}
		return fmt.Sprintf("allowed %s", in.RemoteAddress), a.AllowIP(ctx, in.RemoteAddress)
	case hasPort:
		if block {
			return fmt.Sprintf("closed port %d", in.Port), a.ClosePort(ctx, in.Port)
		}
		return "", fmt.Errorf("%w: opening port %d needs a remote ip", firewall.ErrInvalidTarget, in.Port)
	default:
		return "", ErrUsage
	}
}

// Run parses and dispatches in one step.
func Run(ctx context.Context, tokens []string, a Applier) (string, error) {
	in, err := Parse(tokens)
	if err != nil {
		return "", err
	}
	return Dispatch(ctx, in, a)
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrHelp):
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
