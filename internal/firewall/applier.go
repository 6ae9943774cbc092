package firewall

import (
	"context"
	"fmt"
	"fwgate/internal/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"sync"
)

// Applier commits rule descriptors to the policy store behind a handle.
// Reads go straight to the store; every mutation is serialized.
type Applier struct {
	handle *PolicyHandle
	logger *zap.Logger

	mu sync.Mutex
}

func NewApplier(handle *PolicyHandle, l *zap.Logger) *Applier {
	if l == nil {
		l = zap.NewNop()
	}
	return &Applier{handle: handle, logger: l.Named("applier")}
}

// OpenPorts enumerates the global open ports table.
func (a *Applier) OpenPorts(ctx context.Context) ([]types.OpenPort, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store, err := a.handle.Acquire()
	if err != nil {
		return nil, err
	}

	ports, err := store.ListOpenPorts()
	if err != nil {
		return nil, storeError(err)
	}
	return ports, nil
}

// IsPortOpen reports whether port is in the global open ports table, for any
// protocol.
func (a *Applier) IsPortOpen(ctx context.Context, port uint16) (bool, error) {
	ports, err := a.OpenPorts(ctx)
	if err != nil {
		return false, err
	}

	return portListed(ports, port), nil
}

func portListed(ports []types.OpenPort, port uint16) bool {
	return lo.ContainsBy(ports, func(p types.OpenPort) bool {
		return p.Port == port
	})
}

// ApplyRule submits the rule. Submitting the same rule twice creates two
// rules. Once the store has been called the outcome cannot be canceled.
func (a *Applier) ApplyRule(ctx context.Context, rule types.RuleDescriptor) error {
	if err := validateDescriptor(rule); err != nil {
		return err
	}
	if rule.GroupingTag == "" {
		rule.GroupingTag = GroupingTag
	}

	store, err := a.handle.Acquire()
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if rule.Profiles == 0 {
		profiles, err := store.CurrentProfiles()
		if err != nil {
			return storeError(err)
		}
		rule.Profiles = profiles
	}

	lg := a.logger.With(
		zap.String("rule", rule.Name),
		zap.String("action", string(rule.Action)),
		zap.String("remote", rule.Summary().RemoteAddress),
		zap.Uint16("port", rule.LocalPort),
		zap.Stringer("profiles", rule.Profiles))

	if err := store.AddRule(rule); err != nil {
		lg.Error("failed to add rule", zap.Error(err))
		return storeError(err)
	}

	lg.Info("rule added")
	return nil
}

// OpenPort adds port to the global open ports table as TCP unless it is
// already there under any protocol.
func (a *Applier) OpenPort(ctx context.Context, port uint16, label string) error {
	if port == 0 {
		return invalidTarget("port 0 cannot be opened")
	}
	if label == "" {
		label = fmt.Sprintf("%s port %d", GroupingTag, port)
	}

	return a.mutatePorts(ctx, port, func(store PolicyStore, open bool) error {
		if open {
			a.logger.Debug("port already open", zap.Uint16("port", port))
			return nil
		}

		if err := store.OpenPort(types.OpenPort{Port: port, Protocol: types.ProtocolTCP, Name: label}); err != nil {
			return err
		}
		a.logger.Info("port opened", zap.Uint16("port", port), zap.String("name", label))
		return nil
	})
}

// ClosePort removes the TCP entry for port from the global open ports table.
// It is a no-op when IsPortOpen would report false.
func (a *Applier) ClosePort(ctx context.Context, port uint16) error {
	if port == 0 {
		return invalidTarget("port 0 cannot be closed")
	}

	return a.mutatePorts(ctx, port, func(store PolicyStore, open bool) error {
		if !open {
			a.logger.Debug("port already closed", zap.Uint16("port", port))
			return nil
		}

		if err := store.ClosePort(port, types.ProtocolTCP); err != nil {
			return err
		}
		a.logger.Info("port closed", zap.Uint16("port", port))
		return nil
	})
}

func (a *Applier) mutatePorts(ctx context.Context, port uint16, fn func(store PolicyStore, open bool) error) error {
	store, err := a.handle.Acquire()
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	ports, err := store.ListOpenPorts()
	if err != nil {
		return storeError(err)
	}

	if err := fn(store, portListed(ports, port)); err != nil {
		a.logger.Error("failed to change open port", zap.Uint16("port", port), zap.Error(err))
		return storeError(err)
	}
	return nil
}

// Rules lists every rule carrying the grouping tag, open ports included.
func (a *Applier) Rules(ctx context.Context) ([]types.RuleSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store, err := a.handle.Acquire()
	if err != nil {
		return nil, err
	}

	rules, err := store.ListRules(GroupingTag)
	if err != nil {
		return nil, storeError(err)
	}
	return rules, nil
}

// RemoveRules deletes every rule carrying the grouping tag and returns how
// many went away.
func (a *Applier) RemoveRules(ctx context.Context) (int, error) {
	store, err := a.handle.Acquire()
	if err != nil {
		return 0, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := store.RemoveRulesByTag(GroupingTag)
	if err != nil {
		a.logger.Error("failed to remove tagged rules", zap.Error(err))
		return n, storeError(err)
	}

	a.logger.Info("tagged rules removed", zap.Int("count", n))
	return n, nil
}

// Apply builds the rule for an intent and submits it.
func (a *Applier) Apply(ctx context.Context, in types.Intent) (types.RuleDescriptor, error) {
	rule, err := BuildIntent(in)
	if err != nil {
		return types.RuleDescriptor{}, err
	}
	return rule, a.ApplyRule(ctx, rule)
}

func (a *Applier) BlockIP(ctx context.Context, address string) error {
	return a.applyIPRule(ctx, types.ActionBlock, address)
}

func (a *Applier) AllowIP(ctx context.Context, address string) error {
	return a.applyIPRule(ctx, types.ActionAllow, address)
}

func (a *Applier) BlockPort(ctx context.Context, port uint16, address string) error {
	return a.applyPortRule(ctx, types.ActionBlock, port, address)
}

func (a *Applier) AllowPort(ctx context.Context, port uint16, address string) error {
	return a.applyPortRule(ctx, types.ActionAllow, port, address)
}

func (a *Applier) applyIPRule(ctx context.Context, action types.Action, address string) error {
	rule, err := BuildIPRule(action, address, "")
	if err != nil {
		return err
	}
	return a.ApplyRule(ctx, rule)
}

func (a *Applier) applyPortRule(ctx context.Context, action types.Action, port uint16, address string) error {
	rule, err := BuildPortRule(action, int(port), address, "")
	if err != nil {
		return err
	}
	return a.ApplyRule(ctx, rule)
}
