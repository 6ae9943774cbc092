package login

import (
	"context"
	"fmt"
	"fwgate/client/internal/api"
	"fwgate/client/internal/auth"
	"fwgate/client/internal/cmdutil"
	"fwgate/client/internal/config"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"net/url"
	"strings"
	"time"
)

func NewLoginCmd(cfg config.Config) *cobra.Command {
	var host, grpcAddr, accessKey string
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Save the address and access key of a fwgated daemon",
		Long:    "Check that a fwgated daemon accepts the access key, then save the daemon address to .fwgate.yml and the key to the system keyring",
		Example: "fwgate login --host https://gate.example.com:3646 --grpc-addr gate.example.com:3647",
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, err := url.Parse(host)
			if err != nil || uri.Scheme == "" || uri.Host == "" {
				return fmt.Errorf("invalid host %q", host)
			}

			if accessKey == "" {
				p := promptui.Prompt{Label: "Access key", Mask: '*'}
				if accessKey, err = p.Run(); err != nil {
					return err
				}
			}

			serverUrl := toURL(uri)
			cmdutil.StartLoading("Running test...")
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			err = api.NewService(api.NewClient(serverUrl, accessKey)).Ping(ctx)
			cmdutil.StopLoading()
			if err != nil {
				return fmt.Errorf("test failed: %w", err)
			}

			cfg.Host = serverUrl
			if grpcAddr != "" {
				cfg.GRPCAddr = grpcAddr
			}
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if err := auth.Save(accessKey); err != nil {
				return fmt.Errorf("failed to save access key: %w", err)
			}

			cmdutil.Print(fmt.Sprintf("%s: configuration saved", color.GreenString("Test passed")))
			return nil
		},
	}
	cmd.Flags().StringVarP(&host, "host", "i", cfg.Host, "fwgated http url")
	cmd.Flags().StringVarP(&grpcAddr, "grpc-addr", "g", "", "fwgated gRPC address")
	cmd.Flags().StringVarP(&accessKey, "access-key", "a", "", "fwgated access key")
	return cmd
}

func toURL(u *url.URL) string {
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
