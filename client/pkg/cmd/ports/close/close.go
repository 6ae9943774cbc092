package closecmd

import (
	"context"
	"fmt"
	"fwgate/client/internal/cmdutil"
	"fwgate/internal/firewall"
	"github.com/spf13/cobra"
	"time"
)

type Closer interface {
	ClosePort(ctx context.Context, port uint16) error
}

func NewClosePortCmd(svc Closer) *cobra.Command {
	return &cobra.Command{
		Use:     "close <port>",
		Short:   "Close a port",
		Long:    "Remove a TCP port from the global open ports table. Closing a port that is not open does nothing",
		Example: "fwgate ports close 8080",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := firewall.ParsePort(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := svc.ClosePort(ctx, port); err != nil {
				return err
			}

			cmdutil.PrintS(fmt.Sprintf("Port %d is closed", port))
			return nil
		},
	}
}
