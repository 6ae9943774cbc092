package ports

import (
	closecmd "fwgate/client/pkg/cmd/ports/close"
	"fwgate/client/pkg/cmd/ports/list"
	opencmd "fwgate/client/pkg/cmd/ports/open"
	"fwgate/internal/firewall"
	"github.com/spf13/cobra"
)

func NewPortsCmd(applier *firewall.Applier) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ports <command>",
		Aliases: []string{"p"},
		Short:   "Manage the global open ports table",
		Long:    "List, open and close ports that accept traffic from every remote host",
	}

	cmd.AddCommand(list.NewListPortsCmd(applier))
	cmd.AddCommand(opencmd.NewOpenPortCmd(applier))
	cmd.AddCommand(closecmd.NewClosePortCmd(applier))
	return cmd
}

