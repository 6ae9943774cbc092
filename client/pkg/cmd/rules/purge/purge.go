package purge

import (
	"context"
	"fmt"
	"fwgate/client/internal/cmdutil"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"time"
)

type Remover interface {
	RemoveRules(ctx context.Context) (int, error)
}

func NewPurgeRulesCmd(svc Remover) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "purge",
		Short:   "Remove every rule created by fwgate",
		Long:    "Remove every firewall rule and open port carrying the fwgate tag. Rules created by other tools are left alone",
		Example: "fwgate rules purge --yes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				p := promptui.Prompt{
					Label:     "Are you sure you want to remove all fwgate rules",
					IsConfirm: true,
				}
				if _, err := p.Run(); err != nil {
					if err == promptui.ErrAbort {
						cmdutil.Print("Aborted")
						return nil
					}
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			n, err := svc.RemoveRules(ctx)
			if err != nil {
				return err
			}

			cmdutil.PrintS(fmt.Sprintf("Removed %d rules", n))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
