package cmd

import (
	"fwgate/client/internal/cmdutil"
	"fwgate/client/internal/config"
	"fwgate/client/pkg/cmd/login"
	"fwgate/client/pkg/cmd/ports"
	"fwgate/client/pkg/cmd/remote"
	"fwgate/client/pkg/cmd/rules"
	"fwgate/internal/dispatch"
	"fwgate/internal/firewall"
	"fwgate/logger"
	"github.com/spf13/cobra"
)

func New() (*cobra.Command, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	applier, err := NewLocalApplier(cfg)
	if err != nil {
		return nil, err
	}

	return NewRootCmd(applier, cfg), nil
}

// NewLocalApplier returns an applier for this host's firewall. The policy
// store is opened on first use.
func NewLocalApplier(cfg config.Config) (*firewall.Applier, error) {
	opener, err := firewall.OpenerFor(cfg.Backend, cfg.Table, cfg.Chain)
	if err != nil {
		return nil, err
	}
	return firewall.NewApplier(firewall.NewPolicyHandle(opener), logger.Named("fwgate")), nil
}

// NewRootCmd builds the command tree. The root command itself takes the
// block flag, an address and a port in any order, so its arguments are not
// run through the flag parser.
func NewRootCmd(applier *firewall.Applier, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "fwgate [-B|-Block] <ip> [port]",
		Short:              "fwgate - allow or block remote hosts and ports on this machine",
		Long:               dispatch.Usage,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := dispatch.Run(cmd.Context(), args, applier)
			if err != nil {
				return err
			}
			cmdutil.PrintS(msg)
			return nil
		},
	}

	cmd.AddCommand(rules.NewRulesCmd(applier))
	cmd.AddCommand(ports.NewPortsCmd(applier))
	cmd.AddCommand(remote.NewRemoteCmd(cfg))
	cmd.AddCommand(login.NewLoginCmd(cfg))
	return cmd
}
