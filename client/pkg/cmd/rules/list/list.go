package list

import (
	"context"
	"fmt"
	"fwgate/client/internal/cmdutil"
	"fwgate/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"io"
	"time"
)

type Lister interface {
	Rules(ctx context.Context) ([]types.RuleSummary, error)
}

func NewListRulesCmd(svc Lister) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules",
		Long:  "List every firewall rule and open port carrying the fwgate tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdutil.StartLoading("Working...")
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			rules, err := svc.Rules(ctx)
			cmdutil.StopLoading()
			if err != nil {
				return err
			}

			Render(cmd.OutOrStdout(), rules)
			return nil
		},
	}
}

// Render writes rules as a table.
func Render(w io.Writer, rules []types.RuleSummary) {
	header := table.Row{"Kind", "Name", "Action", "Direction", "Remote", "Port", "Enabled"}
	tw := table.NewWriter()
	tw.AppendHeader(header)
	for _, next := range rules {
		remote, port := next.RemoteAddress, "*"
		if remote == "" {
			remote = "*"
		}
		if next.LocalPort != 0 {
			port = fmt.Sprintf("%d/%s", next.LocalPort, next.Protocol)
		}
		tw.AppendRow(table.Row{
			next.Kind,
			next.Name,
			next.Action,
			next.Direction,
			remote,
			port,
			next.Enabled,
		})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d rules", len(rules))})
	_, _ = fmt.Fprintln(w, tw.Render())
}
