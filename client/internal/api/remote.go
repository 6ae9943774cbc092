package api

import (
	"fwgate/client/internal/config"
	"fwgate/internal/rpc"
	"io"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewRemote connects to the daemon named in cfg, over gRPC when useGRPC is
// set. The closer releases the connection.
func NewRemote(cfg config.Config, accessKey string, useGRPC bool) (Remote, io.Closer, error) {
	if !useGRPC {
		return NewService(NewClient(cfg.Host, accessKey)), nopCloser{}, nil
	}

	c, err := rpc.Dial(cfg.GRPCAddr, accessKey)
	if err != nil {
		return nil, nil, err
	}
	return c, c, nil
}

var _ Remote = (*rpc.Client)(nil)
