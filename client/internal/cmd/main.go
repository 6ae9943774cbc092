package main

import (
	"context"
	"errors"
	"fwgate/client/internal/cmdutil"
	"fwgate/client/pkg/cmd"
	"fwgate/internal/dispatch"
	"fwgate/logger"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.InitLogger(logger.ModeQuiet); err != nil {
		cmdutil.PrintE(err.Error())
		return 1
	}
	defer logger.Sync()

	fwgateCmd, err := cmd.New()
	if err != nil {
		cmdutil.PrintE(err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = fwgateCmd.ExecuteContext(ctx)
	switch {
	case errors.Is(err, dispatch.ErrHelp), errors.Is(err, dispatch.ErrUsage):
		cmdutil.Print(dispatch.Usage)
	case err != nil:
		cmdutil.PrintE(err.Error())
	}
	return dispatch.ExitCode(err)
}
