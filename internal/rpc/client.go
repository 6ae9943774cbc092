package rpc

import (
	"context"
	"fwgate/internal/types"
	"fwgate/pkg/fwgatepb"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Client calls a remote FirewallControl service. A returned error means the
// call did not complete; firewall failures are reported in the outcome.
type Client struct {
	conn      *grpc.ClientConn
	stub      fwgatepb.FirewallControlClient
	accessKey string
}

// Dial connects to target. Without dial options the connection is plaintext.
func Dial(target, accessKey string, opts ...grpc.DialOption) (*Client, error) {
	if len(opts) == 0 {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to "+target)
	}
	return &Client{conn: conn, stub: fwgatepb.NewFirewallControlClient(conn), accessKey: accessKey}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) BlockIP(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	out, err := c.stub.BlockIP(c.outgoing(ctx), toControlRequest(req))
	if err != nil {
		return types.Outcome{}, err
	}
	return fromOutcome(out), nil
}

func (c *Client) AllowIP(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	out, err := c.stub.AllowIP(c.outgoing(ctx), toControlRequest(req))
	if err != nil {
		return types.Outcome{}, err
	}
	return fromOutcome(out), nil
}

func (c *Client) BlockPort(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	out, err := c.stub.BlockPort(c.outgoing(ctx), toControlRequest(req))
	if err != nil {
		return types.Outcome{}, err
	}
	return fromOutcome(out), nil
}

func (c *Client) AllowPort(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	out, err := c.stub.AllowPort(c.outgoing(ctx), toControlRequest(req))
	if err != nil {
		return types.Outcome{}, err
	}
	return fromOutcome(out), nil
}

func (c *Client) ListRules(ctx context.Context) (types.RulesReply, error) {
	out, err := c.stub.ListRules(c.outgoing(ctx), &fwgatepb.ListRulesRequest{})
	if err != nil {
		return types.RulesReply{}, err
	}

	reply := types.RulesReply{
		Outcome: fromOutcome(out.GetOutcome()),
		Rules:   make([]types.RuleSummary, 0, len(out.GetRules())),
	}
	for _, r := range out.GetRules() {
		reply.Rules = append(reply.Rules, fromRule(r))
	}
	return reply, nil
}

func (c *Client) PortStatus(ctx context.Context, port uint16) (types.PortStatusReply, error) {
	out, err := c.stub.PortStatus(c.outgoing(ctx), &fwgatepb.PortStatusRequest{Port: uint32(port)})
	if err != nil {
		return types.PortStatusReply{}, err
	}
	return types.PortStatusReply{
		Outcome: fromOutcome(out.GetOutcome()),
		Port:    int(out.GetPort()),
		Open:    out.GetOpen(),
	}, nil
}

func (c *Client) outgoing(ctx context.Context) context.Context {
	ctx = metadata.AppendToOutgoingContext(ctx, requestIDMetadata, uuid.NewString())
	if c.accessKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, accessKeyMetadata, c.accessKey)
	}
	return ctx
}
