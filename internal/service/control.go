package service

import (
	"context"
	"errors"
	"fmt"
	"fwgate/internal/firewall"
	"fwgate/internal/types"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"reflect"
	"strings"
)

type (
	// Control exposes the four firewall intents to remote callers. Failures are
	// reported in the Outcome, never as a Go error.
	Control interface {
		BlockIP(ctx context.Context, req types.ControlRequest) types.Outcome
		AllowIP(ctx context.Context, req types.ControlRequest) types.Outcome
		BlockPort(ctx context.Context, req types.ControlRequest) types.Outcome
		AllowPort(ctx context.Context, req types.ControlRequest) types.Outcome
		ListRules(ctx context.Context) types.RulesReply
		PortStatus(ctx context.Context, req types.PortStatusRequest) types.PortStatusReply
	}

	// Applier is the slice of firewall.Applier the control service delegates to.
	Applier interface {
		BlockIP(ctx context.Context, address string) error
		AllowIP(ctx context.Context, address string) error
		BlockPort(ctx context.Context, port uint16, address string) error
		AllowPort(ctx context.Context, port uint16, address string) error
		Rules(ctx context.Context) ([]types.RuleSummary, error)
		IsPortOpen(ctx context.Context, port uint16) (bool, error)
	}

	control struct {
		applier  Applier
		validate *validator.Validate
		logger   *zap.Logger
	}

	ipTarget struct {
		RemoteAddress string `json:"remote_address" validate:"required,ip"`
		Port          int    `json:"port" validate:"eq=0"`
	}

	portTarget struct {
		RemoteAddress string `json:"remote_address" validate:"required,ip"`
		Port          int    `json:"port" validate:"required,min=1,max=65535"`
	}
)

var _ Applier = (*firewall.Applier)(nil)

func NewControl(applier Applier, l *zap.Logger) Control {
	if l == nil {
		l = zap.NewNop()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &control{applier: applier, validate: v, logger: l.Named("control")}
}

func (c *control) BlockIP(ctx context.Context, req types.ControlRequest) types.Outcome {
	return c.invoke(ctx, "BlockIP", types.ActionBlock, req, ipTarget{req.RemoteAddress, req.Port}, func() error {
		return c.applier.BlockIP(ctx, req.RemoteAddress)
	})
}

func (c *control) AllowIP(ctx context.Context, req types.ControlRequest) types.Outcome {
	return c.invoke(ctx, "AllowIP", types.ActionAllow, req, ipTarget{req.RemoteAddress, req.Port}, func() error {
		return c.applier.AllowIP(ctx, req.RemoteAddress)
	})
}

func (c *control) BlockPort(ctx context.Context, req types.ControlRequest) types.Outcome {
	return c.invoke(ctx, "BlockPort", types.ActionBlock, req, portTarget{req.RemoteAddress, req.Port}, func() error {
		return c.applier.BlockPort(ctx, uint16(req.Port), req.RemoteAddress)
	})
}

func (c *control) AllowPort(ctx context.Context, req types.ControlRequest) types.Outcome {
	return c.invoke(ctx, "AllowPort", types.ActionAllow, req, portTarget{req.RemoteAddress, req.Port}, func() error {
		return c.applier.AllowPort(ctx, uint16(req.Port), req.RemoteAddress)
	})
}

func (c *control) ListRules(ctx context.Context) types.RulesReply {
	rules, err := c.applier.Rules(ctx)
	if err != nil {
		return types.RulesReply{Outcome: c.failure("ListRules", err)}
	}
	return types.RulesReply{
		Outcome: types.Outcome{Status: types.StatusOK, Message: fmt.Sprintf("%d rules", len(rules))},
		Rules:   rules,
	}
}

func (c *control) PortStatus(ctx context.Context, req types.PortStatusRequest) types.PortStatusReply {
	reply := types.PortStatusReply{Port: req.Port}
	if err := c.validate.Struct(req); err != nil {
		reply.Outcome = invalid(err)
		return reply
	}

	open, err := c.applier.IsPortOpen(ctx, uint16(req.Port))
	if err != nil {
		reply.Outcome = c.failure("PortStatus", err)
		return reply
	}

	reply.Open = open
	reply.Outcome = types.Outcome{Status: types.StatusOK, Message: fmt.Sprintf("port %d open: %t", req.Port, open)}
	return reply
}

func (c *control) invoke(ctx context.Context, method string, action types.Action, req types.ControlRequest, target interface{}, apply func() error) types.Outcome {
	if req.RemoteAddress == "" && req.Port == 0 {
		return types.Outcome{Status: types.StatusValidationError, Message: "remote_address or port is required"}
	}

	if req.Action != "" && req.Action != action {
		return types.Outcome{
			Status:  types.StatusValidationError,
			Message: fmt.Sprintf("action %q does not match %s", req.Action, method),
		}
	}

	if err := c.validate.Struct(req); err != nil {
		return invalid(err)
	}
	if err := c.validate.Struct(target); err != nil {
		return invalid(err)
	}

	if err := apply(); err != nil {
		return c.failure(method, err)
	}

	c.logger.Info("remote intent applied",
		zap.String("method", method),
		zap.String("remote", req.RemoteAddress),
		zap.Int("port", req.Port))
	return types.Outcome{Status: types.StatusOK, Message: success(action, req)}
}

func (c *control) failure(method string, err error) types.Outcome {
	status := StatusOf(err)
	if status == types.StatusValidationError {
		c.logger.Info("remote intent rejected", zap.String("method", method), zap.Error(err))
	} else {
		c.logger.Error("remote intent failed", zap.String("method", method), zap.Error(err))
	}
	return types.Outcome{Status: status, Message: err.Error()}
}

// StatusOf classifies an applier error. Validation wins over store failures
// and an acquisition failure wins over the permission cause it carries.
func StatusOf(err error) types.Status {
	switch {
	case err == nil:
		return types.StatusOK
	case errors.Is(err, firewall.ErrInvalidTarget):
		return types.StatusValidationError
	case errors.Is(err, firewall.ErrPolicyUnavailable):
		return types.StatusUnavailable
	case errors.Is(err, firewall.ErrPermissionDenied):
		return types.StatusPermissionError
	default:
		return types.StatusUnavailable
	}
}

func invalid(err error) types.Outcome {
	var vErrors validator.ValidationErrors
	if errors.As(err, &vErrors) && len(vErrors) > 0 {
		first := vErrors[0]
		msg := fmt.Sprintf("invalid %s: failed %q check", first.Field(), first.Tag())
		if first.Tag() == "eq" {
			msg = fmt.Sprintf("%s is not accepted by this method", first.Field())
		}
		return types.Outcome{Status: types.StatusValidationError, Message: msg}
	}
	return types.Outcome{Status: types.StatusValidationError, Message: err.Error()}
}

func success(action types.Action, req types.ControlRequest) string {
	verb := "allowed"
	if action == types.ActionBlock {
		verb = "blocked"
	}
	if req.Port != 0 {
		return fmt.Sprintf("%s %s on port %d", verb, req.RemoteAddress, req.Port)
	}
	return fmt.Sprintf("%s %s", verb, req.RemoteAddress)
}
