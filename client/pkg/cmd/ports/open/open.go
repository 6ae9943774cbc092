package opencmd

import (
	"context"
	"fmt"
	"fwgate/client/internal/cmdutil"
	"fwgate/internal/firewall"
	"github.com/spf13/cobra"
	"time"
)

type Opener interface {
	OpenPort(ctx context.Context, port uint16, label string) error
}

func NewOpenPortCmd(svc Opener) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:     "open <port>",
		Short:   "Open a port for every remote host",
		Long:    "Add a TCP port to the global open ports table. Opening a port that is already open does nothing",
		Example: "fwgate ports open 8080 --name web",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := firewall.ParsePort(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := svc.OpenPort(ctx, port, name); err != nil {
				return err
			}

			cmdutil.PrintS(fmt.Sprintf("Port %d is open", port))
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Label stored with the port")
	return cmd
}
