package api

import (
	"context"
	"fmt"
	"fwgate/internal/types"
	"net/http"
)

type (
	// Remote is a fwgated daemon reached over HTTP or gRPC. An error means
	// the call did not complete; firewall failures come back in the outcome.
	Remote interface {
		BlockIP(ctx context.Context, req types.ControlRequest) (types.Outcome, error)
		AllowIP(ctx context.Context, req types.ControlRequest) (types.Outcome, error)
		BlockPort(ctx context.Context, req types.ControlRequest) (types.Outcome, error)
		AllowPort(ctx context.Context, req types.ControlRequest) (types.Outcome, error)
		ListRules(ctx context.Context) (types.RulesReply, error)
		PortStatus(ctx context.Context, port uint16) (types.PortStatusReply, error)
	}

	Service interface {
		Remote
		Ping(ctx context.Context) error
	}

	service struct {
		apiClient Client
	}
)

func NewService(apiClient Client) Service {
	return service{apiClient: apiClient}
}

func (s service) BlockIP(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	return s.intent(ctx, "ip/block", req)
}

func (s service) AllowIP(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	return s.intent(ctx, "ip/allow", req)
}

func (s service) BlockPort(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	return s.intent(ctx, "port/block", req)
}

func (s service) AllowPort(ctx context.Context, req types.ControlRequest) (types.Outcome, error) {
	return s.intent(ctx, "port/allow", req)
}

func (s service) ListRules(ctx context.Context) (types.RulesReply, error) {
	var response struct {
		Reply types.RulesReply `json:"data"`
	}

	err := s.apiClient.Do(ctx, Params{
		Method:   http.MethodGet,
		Path:     "rules",
		Response: &response,
	})
	return response.Reply, carried(response.Reply.Outcome, err)
}

func (s service) PortStatus(ctx context.Context, port uint16) (types.PortStatusReply, error) {
	var response struct {
		Reply types.PortStatusReply `json:"data"`
	}

	err := s.apiClient.Do(ctx, Params{
		Method:   http.MethodGet,
		Path:     fmt.Sprintf("ports/%d", port),
		Response: &response,
	})
	return response.Reply, carried(response.Reply.Outcome, err)
}

func (s service) Ping(ctx context.Context) error {
	return s.apiClient.Do(ctx, Params{
		Method: http.MethodGet,
		Path:   "rules",
	})
}

func (s service) intent(ctx context.Context, path string, req types.ControlRequest) (types.Outcome, error) {
	var response struct {
		Outcome types.Outcome `json:"data"`
	}

	err := s.apiClient.Do(ctx, Params{
		Method:   http.MethodPost,
		Path:     path,
		Body:     req,
		Response: &response,
	})
	return response.Outcome, carried(response.Outcome, err)
}

// carried drops err when the server answered with an outcome.
func carried(o types.Outcome, err error) error {
	if err != nil && o.Status != "" {
		return nil
	}
	return err
}
