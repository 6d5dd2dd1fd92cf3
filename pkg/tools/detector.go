// Package tools scans a token sequence for auxiliary tool triggers (OCR,
// vision, embeddings, ...). Detection is fully orthogonal to domain and
// stakes: every tool fires independently and any number may fire at once.
package tools

import (
	"strings"

	"github.com/routewise/router/pkg/config"
	"github.com/routewise/router/pkg/observability"
)

type preppedToolRule struct {
	name     string
	keywords []string
}

// Detector accumulates the set of tools the downstream pipeline must invoke.
type Detector struct {
	rules []preppedToolRule
}

// NewDetector creates a detector over the given tool rules. Detected tools
// are reported in rule order, which keeps the output deterministic.
func NewDetector(cfgRules []config.ToolRule) *Detector {
	rules := make([]preppedToolRule, len(cfgRules))
	for i, rule := range cfgRules {
		prepped := preppedToolRule{
			name:     rule.Name,
			keywords: make([]string, len(rule.Keywords)),
		}
		for j, keyword := range rule.Keywords {
			prepped.keywords[j] = strings.ToLower(keyword)
		}
		rules[i] = prepped
	}
	return &Detector{rules: rules}
}

// Detect returns the tools whose trigger sets intersect the tokens. The
// result is never nil; zero tools is a valid outcome.
func (d *Detector) Detect(tokens []string) []string {
	present := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		present[token] = true
	}

	detected := make([]string, 0, len(d.rules))
	for _, rule := range d.rules {
		for _, keyword := range rule.keywords {
			if present[keyword] {
				detected = append(detected, rule.name)
				observability.RecordToolDetection(rule.name)
				break
			}
		}
	}
	return detected
}
