package config

import (
	"fmt"
	"strings"
)

var validStakes = map[StakesLevel]bool{
	StakesLow:    true,
	StakesMedium: true,
	StakesHigh:   true,
}

var validPolicies = map[ValidationPolicy]bool{
	ValidationNone:         true,
	ValidationEndStage:     true,
	ValidationBlockByBlock: true,
}

// Validate checks the rule tables for structural problems. A failure here is
// fatal: the router cannot serve requests on malformed tables, so errors are
// surfaced to the constructor caller instead of being recovered per request.
func (c *RouterConfig) Validate() error {
	if len(c.DomainRules) == 0 {
		return fmt.Errorf("domain_rules must not be empty")
	}
	seenDomains := make(map[Domain]bool, len(c.DomainRules))
	for i, rule := range c.DomainRules {
		if rule.Domain == "" {
			return fmt.Errorf("domain_rules[%d]: domain must not be empty", i)
		}
		if rule.Domain == DomainUnknown {
			return fmt.Errorf("domain_rules[%d]: %q is the no-match default and cannot be a rule target", i, DomainUnknown)
		}
		if seenDomains[rule.Domain] {
			return fmt.Errorf("domain_rules[%d]: duplicate rule for domain %q", i, rule.Domain)
		}
		seenDomains[rule.Domain] = true
		if err := validateKeywords(rule.Keywords); err != nil {
			return fmt.Errorf("domain_rules[%d] (%s): %w", i, rule.Domain, err)
		}
	}

	if err := c.validateStakes(); err != nil {
		return err
	}

	seenTools := make(map[string]bool, len(c.ToolRules))
	for i, rule := range c.ToolRules {
		if rule.Name == "" {
			return fmt.Errorf("tool_rules[%d]: name must not be empty", i)
		}
		if seenTools[rule.Name] {
			return fmt.Errorf("tool_rules[%d]: duplicate tool %q", i, rule.Name)
		}
		seenTools[rule.Name] = true
		if err := validateKeywords(rule.Keywords); err != nil {
			return fmt.Errorf("tool_rules[%d] (%s): %w", i, rule.Name, err)
		}
	}

	if c.DefaultModel == "" {
		return fmt.Errorf("default_model must not be empty")
	}
	seenModelPairs := make(map[string]bool, len(c.ModelRules))
	for i, rule := range c.ModelRules {
		if rule.Model == "" {
			return fmt.Errorf("model_rules[%d]: model must not be empty", i)
		}
		if !validStakes[rule.Stakes] {
			return fmt.Errorf("model_rules[%d]: unknown stakes level %q", i, rule.Stakes)
		}
		key := string(rule.Domain) + "/" + string(rule.Stakes)
		if seenModelPairs[key] {
			return fmt.Errorf("model_rules[%d]: duplicate entry for (%s, %s)", i, rule.Domain, rule.Stakes)
		}
		seenModelPairs[key] = true
	}

	if !validPolicies[c.DefaultValidationPolicy] {
		return fmt.Errorf("default_validation_policy: unknown policy %q", c.DefaultValidationPolicy)
	}
	seenPolicyPairs := make(map[string]bool, len(c.ValidationRules))
	for i, rule := range c.ValidationRules {
		if !validPolicies[rule.Policy] {
			return fmt.Errorf("validation_rules[%d]: unknown policy %q", i, rule.Policy)
		}
		if !validStakes[rule.Stakes] {
			return fmt.Errorf("validation_rules[%d]: unknown stakes level %q", i, rule.Stakes)
		}
		key := string(rule.Domain) + "/" + string(rule.Stakes)
		if seenPolicyPairs[key] {
			return fmt.Errorf("validation_rules[%d]: duplicate entry for (%s, %s)", i, rule.Domain, rule.Stakes)
		}
		seenPolicyPairs[key] = true
	}

	return nil
}

func (c *RouterConfig) validateStakes() error {
	for keyword, weight := range c.Stakes.Weights {
		if strings.TrimSpace(keyword) == "" {
			return fmt.Errorf("stakes.weights: keyword must not be blank")
		}
		if weight < 0 {
			return fmt.Errorf("stakes.weights[%q]: weight must be non-negative, got %d", keyword, weight)
		}
	}

	medium := c.Stakes.MediumThreshold
	high := c.Stakes.HighThreshold
	if medium < 0 || high < 0 {
		return fmt.Errorf("stakes thresholds must be non-negative, got medium=%d high=%d", medium, high)
	}
	if high != 0 && medium != 0 && high <= medium {
		return fmt.Errorf("stakes.high_threshold (%d) must be greater than medium_threshold (%d)", high, medium)
	}

	for domain, level := range c.Stakes.Overrides {
		if domain == "" {
			return fmt.Errorf("stakes.overrides: domain must not be empty")
		}
		if !validStakes[StakesLevel(level)] {
			return fmt.Errorf("stakes.overrides[%q]: unknown stakes level %q", domain, level)
		}
	}

	return nil
}

func validateKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return fmt.Errorf("keywords must not be empty")
	}
	for i, k := range keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("keywords[%d] must not be blank", i)
		}
	}
	return nil
}
