package main

import (
	"context"
	"flag"
	"fmt"
	"fwgate/internal/config"
	"fwgate/internal/firewall"
	"fwgate/internal/httphandlers"
	"fwgate/internal/rpc"
	"fwgate/internal/service"
	"fwgate/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

type daemon struct {
	cfg     config.Config
	http    *http.Server
	grpc    *grpc.Server
	applier *firewall.Applier
	logger  *zap.Logger
}

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.InitLogger(cfg.LogMode); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		return
	}
	defer logger.Sync()

	d, err := setup(cfg, logger.GetLogger())
	if err != nil {
		logger.Error("setup failed", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := d.run(ctx); err != nil {
		logger.Error("server closed", zap.Error(err))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.New()
	return cfg, cfg.Validate()
}

func setup(cfg config.Config, l *zap.Logger) (*daemon, error) {
	opener, err := firewall.OpenerFor(cfg.Backend, cfg.Table, cfg.Chain)
	if err != nil {
		return nil, err
	}

	applier := firewall.NewApplier(firewall.NewPolicyHandle(opener), l)
	control := service.NewControl(applier, l)
	if cfg.AccessKey == "" {
		l.Warn("no access key configured, remote calls are not authenticated")
	}

	var opts []grpc.ServerOption
	if cfg.HasTLSConfig() {
		creds, err := credentials.NewServerTLSFromFile(cfg.ServerSSLCertFile, cfg.ServerSSLKeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load tls config")
		}
		opts = append(opts, grpc.Creds(creds))
	}

	apiHandler := httphandlers.NewApiHandler(control, cfg.AccessKey, l)
	return &daemon{
		cfg:     cfg,
		applier: applier,
		logger:  l,
		http: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httphandlers.Routes(apiHandler),
			ReadHeaderTimeout: 10 * time.Second,
		},
		grpc: rpc.NewServer(control, cfg.AccessKey, l, opts...),
	}, nil
}

// run serves HTTP and gRPC until ctx is done or either server fails, then
// drains both.
func (d *daemon) run(ctx context.Context) error {
	grpcListener, err := net.Listen("tcp", d.cfg.GRPCAddr)
	if err != nil {
		return errors.Wrap(err, "failed to listen on "+d.cfg.GRPCAddr)
	}

	if _, err := d.applier.OpenPorts(ctx); err != nil {
		d.logger.Warn("firewall policy store not reachable, calls will retry", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.logger.Info("serving http(s)", zap.String("addr", d.cfg.HTTPAddr))
		var err error
		if d.cfg.HasTLSConfig() {
			err = d.http.ListenAndServeTLS(d.cfg.ServerSSLCertFile, d.cfg.ServerSSLKeyFile)
		} else {
			err = d.http.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		d.logger.Info("serving grpc", zap.String("addr", d.cfg.GRPCAddr))
		if err := d.grpc.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		d.logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		d.grpc.GracefulStop()
		return d.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
