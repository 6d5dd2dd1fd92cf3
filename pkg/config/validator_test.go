package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RouterConfig)
		wantErr string
	}{
		{
			name:   "default tables pass",
			mutate: func(c *RouterConfig) {},
		},
		{
			name:    "empty domain rules",
			mutate:  func(c *RouterConfig) { c.DomainRules = nil },
			wantErr: "domain_rules must not be empty",
		},
		{
			name: "rule targeting unknown",
			mutate: func(c *RouterConfig) {
				c.DomainRules = append(c.DomainRules, DomainRule{Domain: DomainUnknown, Keywords: []string{"x"}})
			},
			wantErr: "no-match default",
		},
		{
			name: "duplicate domain rule",
			mutate: func(c *RouterConfig) {
				c.DomainRules = append(c.DomainRules, DomainRule{Domain: DomainCreative, Keywords: []string{"x"}})
			},
			wantErr: "duplicate rule",
		},
		{
			name: "blank keyword",
			mutate: func(c *RouterConfig) {
				c.DomainRules[0].Keywords = []string{"architecture", "  "}
			},
			wantErr: "must not be blank",
		},
		{
			name: "negative weight",
			mutate: func(c *RouterConfig) {
				c.Stakes.Weights["architecture"] = -1
			},
			wantErr: "must be non-negative",
		},
		{
			name: "inverted thresholds",
			mutate: func(c *RouterConfig) {
				c.Stakes.MediumThreshold = 5
				c.Stakes.HighThreshold = 2
			},
			wantErr: "must be greater than",
		},
		{
			name: "bad override level",
			mutate: func(c *RouterConfig) {
				c.Stakes.Overrides["creative"] = "extreme"
			},
			wantErr: "unknown stakes level",
		},
		{
			name: "duplicate tool rule",
			mutate: func(c *RouterConfig) {
				c.ToolRules = append(c.ToolRules, ToolRule{Name: "ocr", Keywords: []string{"x"}})
			},
			wantErr: "duplicate tool",
		},
		{
			name:    "missing default model",
			mutate:  func(c *RouterConfig) { c.DefaultModel = "" },
			wantErr: "default_model must not be empty",
		},
		{
			name: "empty model in rule",
			mutate: func(c *RouterConfig) {
				c.ModelRules[0].Model = ""
			},
			wantErr: "model must not be empty",
		},
		{
			name: "duplicate model pair",
			mutate: func(c *RouterConfig) {
				c.ModelRules = append(c.ModelRules, c.ModelRules[0])
			},
			wantErr: "duplicate entry",
		},
		{
			name: "unknown stakes in model rule",
			mutate: func(c *RouterConfig) {
				c.ModelRules[0].Stakes = "critical"
			},
			wantErr: "unknown stakes level",
		},
		{
			name:    "bad default policy",
			mutate:  func(c *RouterConfig) { c.DefaultValidationPolicy = "sometimes" },
			wantErr: "unknown policy",
		},
		{
			name: "bad policy in rule",
			mutate: func(c *RouterConfig) {
				c.ValidationRules[0].Policy = "sometimes"
			},
			wantErr: "unknown policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
