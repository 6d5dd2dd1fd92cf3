package scoring

import (
	"testing"

	"github.com/routewise/router/pkg/config"
	"github.com/routewise/router/pkg/tokenize"
)

func TestStakesScorer_Score(t *testing.T) {
	scorer := NewStakesScorer(config.Default().Stakes)

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "optimize scores 2, function scores 0",
			input:    "Optimize this python function loop for better performance.",
			expected: 2,
		},
		{
			name:     "refactor plus architecture",
			input:    "Refactor the system architecture to use dependency injection.",
			expected: 5,
		},
		{
			name:     "creative text scores 0",
			input:    "Write a creative poem about the sun.",
			expected: 0,
		},
		{
			name:     "unrecognized tokens score 0",
			input:    "Banana burger sky blue.",
			expected: 0,
		},
		{
			name:     "repeated keywords count per occurrence",
			input:    "optimize optimize",
			expected: 4,
		},
		{
			name:     "empty input scores 0",
			input:    "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tokenize.Tokenize(tt.input))
			if got != tt.expected {
				t.Errorf("Score(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStakesScorer_Bucket(t *testing.T) {
	scorer := NewStakesScorer(config.StakesConfig{
		Weights:         map[string]int{},
		MediumThreshold: 1,
		HighThreshold:   5,
	})

	tests := []struct {
		score    int
		expected config.StakesLevel
	}{
		{0, config.StakesLow},
		{1, config.StakesMedium},
		{2, config.StakesMedium},
		{4, config.StakesMedium},
		{5, config.StakesHigh},
		{12, config.StakesHigh},
	}

	for _, tt := range tests {
		if got := scorer.Bucket(tt.score); got != tt.expected {
			t.Errorf("Bucket(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestStakesScorer_DomainOverride(t *testing.T) {
	scorer := NewStakesScorer(config.Default().Stakes)

	// Architecture is forced high even at score 0.
	if got := scorer.Stakes(config.DomainCodingArchitecture, 0); got != config.StakesHigh {
		t.Errorf("Expected architecture override to force high stakes, got %q", got)
	}

	// Other domains keep the bucketed level.
	if got := scorer.Stakes(config.DomainCodingImplementation, 2); got != config.StakesMedium {
		t.Errorf("Expected medium stakes for score 2, got %q", got)
	}
	if got := scorer.Stakes(config.DomainCreative, 0); got != config.StakesLow {
		t.Errorf("Expected low stakes for score 0, got %q", got)
	}
}

func TestNewStakesScorer_DefaultThresholds(t *testing.T) {
	scorer := NewStakesScorer(config.StakesConfig{Weights: map[string]int{}})

	if got := scorer.Bucket(0); got != config.StakesLow {
		t.Errorf("Bucket(0) = %q, want low", got)
	}
	if got := scorer.Bucket(1); got != config.StakesMedium {
		t.Errorf("Bucket(1) = %q, want medium", got)
	}
	if got := scorer.Bucket(5); got != config.StakesHigh {
		t.Errorf("Bucket(5) = %q, want high", got)
	}
}
