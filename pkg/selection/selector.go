// Package selection resolves a (domain, stakes) pair to a concrete model
// identifier and a validation policy via fixed lookup tables.
package selection

import (
	"github.com/routewise/router/pkg/config"
)

type pairKey struct {
	domain config.Domain
	stakes config.StakesLevel
}

// ModelSelector is a pure (domain, stakes) → model lookup. The mapping is
// total: pairs with no authored entry resolve to the default model, so a
// model identifier is always returned.
type ModelSelector struct {
	entries      map[pairKey]string
	defaultModel string
}

// NewModelSelector builds the lookup from the authored model rules.
func NewModelSelector(rules []config.ModelRule, defaultModel string) *ModelSelector {
	entries := make(map[pairKey]string, len(rules))
	for _, rule := range rules {
		entries[pairKey{domain: rule.Domain, stakes: rule.Stakes}] = rule.Model
	}
	return &ModelSelector{entries: entries, defaultModel: defaultModel}
}

// Select returns the model for the pair, falling back to the default model.
func (s *ModelSelector) Select(domain config.Domain, stakes config.StakesLevel) string {
	if model, ok := s.entries[pairKey{domain: domain, stakes: stakes}]; ok {
		return model
	}
	return s.defaultModel
}

// PolicyMapper is a pure (domain, stakes) → validation policy lookup, total
// with the same fallback discipline as ModelSelector.
type PolicyMapper struct {
	entries       map[pairKey]config.ValidationPolicy
	defaultPolicy config.ValidationPolicy
}

// NewPolicyMapper builds the lookup from the authored validation rules.
func NewPolicyMapper(rules []config.ValidationRule, defaultPolicy config.ValidationPolicy) *PolicyMapper {
	entries := make(map[pairKey]config.ValidationPolicy, len(rules))
	for _, rule := range rules {
		entries[pairKey{domain: rule.Domain, stakes: rule.Stakes}] = rule.Policy
	}
	return &PolicyMapper{entries: entries, defaultPolicy: defaultPolicy}
}

// Policy returns the validation policy for the pair, falling back to the
// default policy.
func (m *PolicyMapper) Policy(domain config.Domain, stakes config.StakesLevel) config.ValidationPolicy {
	if policy, ok := m.entries[pairKey{domain: domain, stakes: stakes}]; ok {
		return policy
	}
	return m.defaultPolicy
}
