package remote

import (
	"context"
	"fmt"
	"fwgate/client/internal/api"
	"fwgate/client/internal/auth"
	"fwgate/client/internal/cmdutil"
	"fwgate/client/internal/config"
	"fwgate/client/pkg/cmd/rules/list"
	"fwgate/internal/firewall"
	"fwgate/internal/types"
	"github.com/spf13/cobra"
	"time"
)

type intentFunc func(r api.Remote, ctx context.Context, req types.ControlRequest) (types.Outcome, error)

func NewRemoteCmd(cfg config.Config) *cobra.Command {
	var useGRPC bool
	cmd := &cobra.Command{
		Use:     "remote <command>",
		Aliases: []string{"rm"},
		Short:   "Change the firewall of a machine running fwgated",
		Long:    "Send block and allow requests to a fwgated daemon. The daemon is taken from .fwgate.yml, see 'fwgate login'",
	}
	cmd.PersistentFlags().BoolVar(&useGRPC, "grpc", false, "Talk to the daemon over gRPC instead of HTTP")

	connect := func() (api.Remote, func(), error) {
		key, err := auth.Get()
		if err != nil {
			return nil, nil, err
		}
		r, closer, err := api.NewRemote(cfg, key, useGRPC)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = closer.Close() }, nil
	}

	cmd.AddCommand(newIntentCmd("block-ip <ip>", "Block every inbound packet from an address", 1, api.Remote.BlockIP, connect))
	cmd.AddCommand(newIntentCmd("allow-ip <ip>", "Allow every inbound packet from an address", 1, api.Remote.AllowIP, connect))
	cmd.AddCommand(newIntentCmd("block-port <ip> <port>", "Block an address on one TCP port", 2, api.Remote.BlockPort, connect))
	cmd.AddCommand(newIntentCmd("allow-port <ip> <port>", "Allow an address on one TCP port", 2, api.Remote.AllowPort, connect))
	cmd.AddCommand(newRulesCmd(connect))
	return cmd
}

func newIntentCmd(use, short string, nargs int, call intentFunc, connect func() (api.Remote, func(), error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.ControlRequest{RemoteAddress: args[0]}
			if nargs == 2 {
				port, err := firewall.ParsePort(args[1])
				if err != nil {
					return err
				}
				req.Port = int(port)
			}

			r, done, err := connect()
			if err != nil {
				return err
			}
			defer done()

			cmdutil.StartLoading("Working...")
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			out, err := call(r, ctx, req)
			cmdutil.StopLoading()
			if err != nil {
				return fmt.Errorf("outcome unknown, re-check with 'fwgate remote rules': %w", err)
			}
			return cmdutil.PrintOutcome(out)
		},
	}
}

func newRulesCmd(connect func() (api.Remote, func(), error)) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules fwgate created on the remote machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, done, err := connect()
			if err != nil {
				return err
			}
			defer done()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			reply, err := r.ListRules(ctx)
			if err != nil {
				return err
			}
			if !reply.OK() {
				return cmdutil.PrintOutcome(reply.Outcome)
			}

			list.Render(cmd.OutOrStdout(), reply.Rules)
			return nil
		},
	}
}
