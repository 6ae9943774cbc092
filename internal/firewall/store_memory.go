package firewall

import (
	"fwgate/internal/types"
	"github.com/samber/lo"
	"sort"
	"sync"
)

// MemoryStore keeps policy in process memory. It backs the "memory" backend
// and the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	rules    []types.RuleDescriptor
	ports    []types.OpenPort
	profiles types.Profile

	// failWith, when set, is returned by every mutating call.
	failWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: types.ProfileAll}
}

// SetProfiles changes the profile set reported as current.
func (m *MemoryStore) SetProfiles(p types.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = p
}

// FailMutations makes every later mutation return err. A nil err clears it.
func (m *MemoryStore) FailMutations(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// Rules returns a copy of the submitted descriptors in submission order.
func (m *MemoryStore) Rules() []types.RuleDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.RuleDescriptor(nil), m.rules...)
}

func (m *MemoryStore) CurrentProfiles() (types.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profiles, nil
}

func (m *MemoryStore) ListOpenPorts() ([]types.OpenPort, error) {
	m.mu.RLock()
	ports := append([]types.OpenPort(nil), m.ports...)
	m.mu.RUnlock()

	sortOpenPorts(ports)
	return ports, nil
}

func (m *MemoryStore) OpenPort(port types.OpenPort) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	m.ports = append(m.ports, port)
	return nil
}

func (m *MemoryStore) ClosePort(port uint16, protocol types.Protocol) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	m.ports = lo.Reject(m.ports, func(p types.OpenPort, _ int) bool {
		return p.Port == port && p.Protocol == protocol
	})
	return nil
}

func (m *MemoryStore) AddRule(rule types.RuleDescriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	m.rules = append(m.rules, rule)
	return nil
}

func (m *MemoryStore) ListRules(tag string) ([]types.RuleSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := lo.FilterMap(m.rules, func(r types.RuleDescriptor, _ int) (types.RuleSummary, bool) {
		return r.Summary(), r.GroupingTag == tag
	})
	if tag == GroupingTag {
		for _, p := range m.ports {
			result = append(result, openPortSummary(p))
		}
	}
	return result, nil
}

func (m *MemoryStore) RemoveRulesByTag(tag string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return 0, m.failWith
	}

	before := len(m.rules)
	m.rules = lo.Reject(m.rules, func(r types.RuleDescriptor, _ int) bool {
		return r.GroupingTag == tag
	})
	removed := before - len(m.rules)

	if tag == GroupingTag {
		removed += len(m.ports)
		m.ports = nil
	}
	return removed, nil
}

func sortOpenPorts(ports []types.OpenPort) {
	sort.SliceStable(ports, func(i, j int) bool {
		if ports[i].Port != ports[j].Port {
			return ports[i].Port < ports[j].Port
		}
		return ports[i].Protocol < ports[j].Protocol
	})
}
