package rules

import (
	"fwgate/client/pkg/cmd/rules/list"
	"fwgate/client/pkg/cmd/rules/purge"
	"fwgate/internal/firewall"
	"github.com/spf13/cobra"
)

func NewRulesCmd(applier *firewall.Applier) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules <command>",
		Aliases: []string{"r"},
		Short:   "Manage rules created by fwgate",
		Long:    "List or remove the firewall rules fwgate created on this machine",
	}

	cmd.AddCommand(list.NewListRulesCmd(applier))
	cmd.AddCommand(purge.NewPurgeRulesCmd(applier))
	return cmd
}
