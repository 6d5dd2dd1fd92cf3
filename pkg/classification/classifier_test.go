package classification

import (
	"testing"

	"github.com/routewise/router/pkg/config"
	"github.com/routewise/router/pkg/tokenize"
)

func TestDomainClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected config.Domain
	}{
		{
			name:     "architecture keywords",
			input:    "Refactor the system architecture to use dependency injection.",
			expected: config.DomainCodingArchitecture,
		},
		{
			name:     "implementation keywords",
			input:    "Optimize this python function loop for better performance.",
			expected: config.DomainCodingImplementation,
		},
		{
			name:     "creative keywords",
			input:    "Write a creative poem about the sun.",
			expected: config.DomainCreative,
		},
		{
			name:     "document keywords",
			input:    "Scan this pdf image and find similar files.",
			expected: config.DomainDocuments,
		},
		{
			name:     "no match falls through to unknown",
			input:    "Banana burger sky blue.",
			expected: config.DomainUnknown,
		},
		{
			name:     "empty input is unknown",
			input:    "",
			expected: config.DomainUnknown,
		},
	}

	classifier := NewDomainClassifier(config.Default().DomainRules)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tokenize.Tokenize(tt.input))
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDomainClassifier_FirstMatchWins(t *testing.T) {
	// Both rules trigger on "refactor"; authored order must decide.
	rules := []config.DomainRule{
		{Domain: "first", Keywords: []string{"refactor"}},
		{Domain: "second", Keywords: []string{"refactor", "cleanup"}},
	}
	classifier := NewDomainClassifier(rules)

	got := classifier.Classify([]string{"refactor", "cleanup"})
	if got != "first" {
		t.Errorf("Expected first rule to win, got %q", got)
	}
}

func TestDomainClassifier_PhraseMatching(t *testing.T) {
	rules := []config.DomainRule{
		{Domain: config.DomainCodingArchitecture, Keywords: []string{"dependency injection"}},
	}
	classifier := NewDomainClassifier(rules)

	tests := []struct {
		name     string
		tokens   []string
		expected config.Domain
	}{
		{
			name:     "consecutive tokens match",
			tokens:   []string{"use", "dependency", "injection", "here"},
			expected: config.DomainCodingArchitecture,
		},
		{
			name:     "separated tokens do not match",
			tokens:   []string{"dependency", "on", "injection"},
			expected: config.DomainUnknown,
		},
		{
			name:     "phrase longer than input does not match",
			tokens:   []string{"injection"},
			expected: config.DomainUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.tokens)
			if got != tt.expected {
				t.Errorf("Classify(%v) = %q, want %q", tt.tokens, got, tt.expected)
			}
		})
	}
}
