package list

import (
	"context"
	"fwgate/client/internal/cmdutil"
	"fwgate/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"time"
)

type Lister interface {
	OpenPorts(ctx context.Context) ([]types.OpenPort, error)
}

func NewListPortsCmd(svc Lister) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open ports",
		Long:  "List the global open ports table of this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			ports, err := svc.OpenPorts(ctx)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"Port", "Protocol", "Name"})
			for _, next := range ports {
				tw.AppendRow(table.Row{next.Port, next.Protocol, next.Name})
			}
			cmdutil.Print(tw.Render())
			if len(ports) == 0 {
				cmdutil.Print("no open ports")
			}
			return nil
		},
	}
}
