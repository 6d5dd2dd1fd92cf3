// Package classification maps a token sequence to a single request domain
// using an ordered list of keyword rules.
package classification

import (
	"strings"

	"github.com/routewise/router/pkg/config"
	"github.com/routewise/router/pkg/observability"
)

// preppedDomainRule stores preprocessed keywords for efficient matching.
// Multi-word keywords are split into their token sequences at construction
// so matching never re-tokenizes rule text.
type preppedDomainRule struct {
	domain  config.Domain
	phrases [][]string
}

// DomainClassifier selects the request domain by evaluating rules in authored
// order; the first rule whose trigger set intersects the tokens wins. Rule
// order is significant: later rules may share keywords with earlier ones and
// must not shadow them.
type DomainClassifier struct {
	rules []preppedDomainRule
}

// NewDomainClassifier creates a classifier over the given ordered rules.
func NewDomainClassifier(cfgRules []config.DomainRule) *DomainClassifier {
	rules := make([]preppedDomainRule, len(cfgRules))
	for i, rule := range cfgRules {
		prepped := preppedDomainRule{
			domain:  rule.Domain,
			phrases: make([][]string, len(rule.Keywords)),
		}
		for j, keyword := range rule.Keywords {
			prepped.phrases[j] = strings.Fields(strings.ToLower(keyword))
		}
		rules[i] = prepped
	}
	return &DomainClassifier{rules: rules}
}

// Classify returns the domain of the first matching rule, or DomainUnknown
// when no rule matches. An empty token sequence matches nothing.
func (c *DomainClassifier) Classify(tokens []string) config.Domain {
	for _, rule := range c.rules {
		for _, phrase := range rule.phrases {
			if containsPhrase(tokens, phrase) {
				observability.Debugf("Domain rule matched: domain=%s keyword=%q", rule.domain, strings.Join(phrase, " "))
				return rule.domain
			}
		}
	}
	return config.DomainUnknown
}

// containsPhrase reports whether phrase occurs in tokens as a consecutive
// run. Single-word phrases reduce to token membership.
func containsPhrase(tokens []string, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		matched := true
		for j, word := range phrase {
			if tokens[i+j] != word {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
