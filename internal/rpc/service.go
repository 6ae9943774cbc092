//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=fwgate --go-grpc_out=../.. --go-grpc_opt=module=fwgate fwgate/v1/control.proto

package rpc

import (
	"context"
	"fwgate/internal/service"
	"fwgate/internal/types"
	"fwgate/pkg/fwgatepb"
)

// controlServer adapts service.Control to the generated FirewallControl
// server. Every firewall outcome is a reply, never a gRPC error.
type controlServer struct {
	fwgatepb.UnimplementedFirewallControlServer
	control service.Control
}

func (s *controlServer) BlockIP(ctx context.Context, in *fwgatepb.ControlRequest) (*fwgatepb.Outcome, error) {
	return toOutcome(s.control.BlockIP(ctx, fromControlRequest(in))), nil
}

func (s *controlServer) AllowIP(ctx context.Context, in *fwgatepb.ControlRequest) (*fwgatepb.Outcome, error) {
	return toOutcome(s.control.AllowIP(ctx, fromControlRequest(in))), nil
}

func (s *controlServer) BlockPort(ctx context.Context, in *fwgatepb.ControlRequest) (*fwgatepb.Outcome, error) {
	return toOutcome(s.control.BlockPort(ctx, fromControlRequest(in))), nil
}

func (s *controlServer) AllowPort(ctx context.Context, in *fwgatepb.ControlRequest) (*fwgatepb.Outcome, error) {
	return toOutcome(s.control.AllowPort(ctx, fromControlRequest(in))), nil
}

func (s *controlServer) ListRules(ctx context.Context, _ *fwgatepb.ListRulesRequest) (*fwgatepb.ListRulesReply, error) {
	reply := s.control.ListRules(ctx)
	out := &fwgatepb.ListRulesReply{
		Outcome: toOutcome(reply.Outcome),
		Rules:   make([]*fwgatepb.Rule, 0, len(reply.Rules)),
	}
	for _, r := range reply.Rules {
		out.Rules = append(out.Rules, toRule(r))
	}
	return out, nil
}

func (s *controlServer) PortStatus(ctx context.Context, in *fwgatepb.PortStatusRequest) (*fwgatepb.PortStatusReply, error) {
	reply := s.control.PortStatus(ctx, types.PortStatusRequest{Port: int(in.GetPort())})
	return &fwgatepb.PortStatusReply{
		Outcome: toOutcome(reply.Outcome),
		Port:    uint32(reply.Port),
		Open:    reply.Open,
	}, nil
}

func fromControlRequest(in *fwgatepb.ControlRequest) types.ControlRequest {
	return types.ControlRequest{
		Action:        types.Action(in.GetAction()),
		RemoteAddress: in.GetRemoteAddress(),
		Port:          int(in.GetPort()),
	}
}

func toControlRequest(req types.ControlRequest) *fwgatepb.ControlRequest {
	return &fwgatepb.ControlRequest{
		Action:        string(req.Action),
		RemoteAddress: req.RemoteAddress,
		Port:          uint32(req.Port),
	}
}

func toOutcome(o types.Outcome) *fwgatepb.Outcome {
	return &fwgatepb.Outcome{Status: string(o.Status), Message: o.Message}
}

func fromOutcome(o *fwgatepb.Outcome) types.Outcome {
	return types.Outcome{Status: types.Status(o.GetStatus()), Message: o.GetMessage()}
}

func toRule(r types.RuleSummary) *fwgatepb.Rule {
	return &fwgatepb.Rule{
		Kind:          string(r.Kind),
		Name:          r.Name,
		Tag:           r.Tag,
		Action:        string(r.Action),
		Direction:     string(r.Direction),
		Protocol:      string(r.Protocol),
		RemoteAddress: r.RemoteAddress,
		LocalPort:     uint32(r.LocalPort),
		Enabled:       r.Enabled,
	}
}

func fromRule(r *fwgatepb.Rule) types.RuleSummary {
	return types.RuleSummary{
		Kind:          types.RuleKind(r.GetKind()),
		Name:          r.GetName(),
		Tag:           r.GetTag(),
		Action:        types.Action(r.GetAction()),
		Direction:     types.Direction(r.GetDirection()),
		Protocol:      types.Protocol(r.GetProtocol()),
		RemoteAddress: r.GetRemoteAddress(),
		LocalPort:     uint16(r.GetLocalPort()),
		Enabled:       r.GetEnabled(),
	}
}
