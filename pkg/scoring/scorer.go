// Package scoring computes the integer complexity score of a request and
// buckets it into a stakes level.
package scoring

import (
	"github.com/routewise/router/pkg/config"
)

// Default thresholds when the config leaves them zero.
const (
	defaultMediumThreshold = 1
	defaultHighThreshold   = 5
)

// StakesScorer sums per-keyword weights over the token sequence and buckets
// the total via fixed thresholds. Zero-weight entries are recognized keywords
// that intentionally contribute nothing to the score.
type StakesScorer struct {
	weights         map[string]int
	mediumThreshold int
	highThreshold   int
	overrides       map[config.Domain]config.StakesLevel
}

// NewStakesScorer creates a scorer from the stakes configuration.
func NewStakesScorer(cfg config.StakesConfig) *StakesScorer {
	medium := cfg.MediumThreshold
	if medium <= 0 {
		medium = defaultMediumThreshold
	}
	high := cfg.HighThreshold
	if high <= 0 {
		high = defaultHighThreshold
	}

	overrides := make(map[config.Domain]config.StakesLevel, len(cfg.Overrides))
	for domain, level := range cfg.Overrides {
		overrides[config.Domain(domain)] = config.StakesLevel(level)
	}

	weights := make(map[string]int, len(cfg.Weights))
	for keyword, weight := range cfg.Weights {
		weights[keyword] = weight
	}

	return &StakesScorer{
		weights:         weights,
		mediumThreshold: medium,
		highThreshold:   high,
		overrides:       overrides,
	}
}

// Score sums the weights of all weighted tokens. Each occurrence counts, so
// a keyword appearing twice contributes its weight twice.
func (s *StakesScorer) Score(tokens []string) int {
	total := 0
	for _, token := range tokens {
		total += s.weights[token]
	}
	return total
}

// Bucket maps a score to a stakes level via the configured thresholds.
func (s *StakesScorer) Bucket(score int) config.StakesLevel {
	switch {
	case score >= s.highThreshold:
		return config.StakesHigh
	case score >= s.mediumThreshold:
		return config.StakesMedium
	default:
		return config.StakesLow
	}
}

// Stakes buckets the score, then applies the domain override if one is
// configured. The override is policy, not arithmetic: it wins over any
// computed score and must run after domain classification.
func (s *StakesScorer) Stakes(domain config.Domain, score int) config.StakesLevel {
	if level, ok := s.overrides[domain]; ok {
		return level
	}
	return s.Bucket(score)
}
