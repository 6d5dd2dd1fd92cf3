package config

// Domain is the coarse category of user intent a request is classified into.
type Domain string

const (
	DomainCodingArchitecture   Domain = "coding_architecture"
	DomainCodingImplementation Domain = "coding_implementation"
	DomainCreative             Domain = "creative"
	DomainDocuments            Domain = "documents"
	DomainUnknown              Domain = "unknown"
)

// StakesLevel is the risk tier governing how strictly downstream output is
// validated.
type StakesLevel string

const (
	StakesLow    StakesLevel = "low"
	StakesMedium StakesLevel = "medium"
	StakesHigh   StakesLevel = "high"
)

// ValidationPolicy is the discipline applied to the downstream model's output.
type ValidationPolicy string

const (
	ValidationNone         ValidationPolicy = "none"
	ValidationEndStage     ValidationPolicy = "end_stage"
	ValidationBlockByBlock ValidationPolicy = "block_by_block"
)

// DomainRule maps a set of trigger keywords/phrases to a domain. Rules are
// evaluated in authored order with first-match-wins semantics, so the order
// of the domain_rules list is significant.
type DomainRule struct {
	Domain Domain `yaml:"domain" json:"domain"`

	// Keywords trigger this rule when any of them appears in the request.
	// Multi-word entries match as consecutive token runs.
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// StakesConfig configures the complexity scorer and its bucketing into
// stakes levels.
type StakesConfig struct {
	// Weights maps keywords to small non-negative integer weights. A zero
	// weight is legal and meaningful: the keyword is recognized but does not
	// raise the score.
	Weights map[string]int `yaml:"weights" json:"weights"`

	// MediumThreshold is the minimum score bucketed as medium stakes.
	// Scores below it are low.
	// Default: 1
	MediumThreshold int `yaml:"medium_threshold,omitempty" json:"medium_threshold,omitempty"`

	// HighThreshold is the minimum score bucketed as high stakes.
	// Default: 5
	HighThreshold int `yaml:"high_threshold,omitempty" json:"high_threshold,omitempty"`

	// Overrides forces a stakes level for a domain regardless of the computed
	// score, e.g. coding_architecture is always high.
	Overrides map[string]string `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// ToolRule maps a set of trigger keywords to an auxiliary tool tag. Tool
// rules are independent of each other and of domain rules; any number of
// tools may fire for one request.
type ToolRule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// ModelRule maps a (domain, stakes) pair to a downstream model identifier.
type ModelRule struct {
	Domain Domain      `yaml:"domain" json:"domain"`
	Stakes StakesLevel `yaml:"stakes" json:"stakes"`
	Model  string      `yaml:"model" json:"model"`
}

// ValidationRule maps a (domain, stakes) pair to a validation policy.
type ValidationRule struct {
	Domain Domain           `yaml:"domain" json:"domain"`
	Stakes StakesLevel      `yaml:"stakes" json:"stakes"`
	Policy ValidationPolicy `yaml:"policy" json:"policy"`
}

// RouterConfig holds the complete rule tables driving routing decisions.
// The tables are established once at initialization and read-only afterwards,
// which makes every component built on them safe for concurrent use.
type RouterConfig struct {
	// DomainRules is the ordered list of domain classification rules.
	DomainRules []DomainRule `yaml:"domain_rules" json:"domain_rules"`

	// Stakes configures complexity scoring and bucketing.
	Stakes StakesConfig `yaml:"stakes" json:"stakes"`

	// ToolRules is the list of auxiliary tool trigger sets. Detected tools
	// are reported in this order.
	ToolRules []ToolRule `yaml:"tool_rules" json:"tool_rules"`

	// ModelRules are the authored (domain, stakes) → model entries.
	// Pairs with no entry resolve to DefaultModel.
	ModelRules   []ModelRule `yaml:"model_rules" json:"model_rules"`
	DefaultModel string      `yaml:"default_model" json:"default_model"`

	// ValidationRules are the authored (domain, stakes) → policy entries.
	// Pairs with no entry resolve to DefaultValidationPolicy.
	ValidationRules         []ValidationRule `yaml:"validation_rules" json:"validation_rules"`
	DefaultValidationPolicy ValidationPolicy `yaml:"default_validation_policy" json:"default_validation_policy"`
}

// Default returns the built-in rule tables. They are the same tables shipped
// in config/config.yaml and let the router run without any file I/O.
func Default() *RouterConfig {
	return &RouterConfig{
		DomainRules: []DomainRule{
			{
				Domain: DomainCodingArchitecture,
				Keywords: []string{
					"architecture", "architectural", "refactor", "microservices",
					"dependency injection", "system design",
				},
			},
			{
				Domain: DomainCodingImplementation,
				Keywords: []string{
					"optimize", "function", "loop", "performance",
					"implementation", "implement", "debug", "bug",
				},
			},
			{
				Domain:   DomainCreative,
				Keywords: []string{"story", "poem", "creative", "novel", "lyrics"},
			},
			{
				Domain:   DomainDocuments,
				Keywords: []string{"scan", "pdf", "image", "document", "photo"},
			},
		},
		Stakes: StakesConfig{
			Weights: map[string]int{
				"architecture":  3,
				"microservices": 3,
				"refactor":      2,
				"optimize":      2,
				"migration":     2,
				"debug":         1,
				"security":      3,
				// Recognized but unscored: these mark coding intent without
				// raising the stakes on their own.
				"function":       0,
				"loop":           0,
				"performance":    0,
				"implementation": 0,
			},
			MediumThreshold: 1,
			HighThreshold:   5,
			Overrides: map[string]string{
				string(DomainCodingArchitecture): string(StakesHigh),
			},
		},
		ToolRules: []ToolRule{
			{Name: "ocr", Keywords: []string{"scan", "pdf"}},
			{Name: "vision", Keywords: []string{"image", "photo", "picture"}},
			{Name: "embeddings", Keywords: []string{"find", "similar", "search"}},
		},
		ModelRules: []ModelRule{
			{Domain: DomainCodingArchitecture, Stakes: StakesHigh, Model: "qwen_coder_32b"},
			{Domain: DomainCodingImplementation, Stakes: StakesMedium, Model: "nemotron_30b"},
			{Domain: DomainCodingImplementation, Stakes: StakesHigh, Model: "qwen_coder_32b"},
			{Domain: DomainCreative, Stakes: StakesLow, Model: "mythomax_13b"},
			{Domain: DomainCreative, Stakes: StakesMedium, Model: "mythomax_13b"},
		},
		DefaultModel: "gpt_oss_20b",
		ValidationRules: []ValidationRule{
			{Domain: DomainCodingArchitecture, Stakes: StakesHigh, Policy: ValidationBlockByBlock},
			{Domain: DomainCodingImplementation, Stakes: StakesHigh, Policy: ValidationBlockByBlock},
			{Domain: DomainCreative, Stakes: StakesLow, Policy: ValidationNone},
		},
		DefaultValidationPolicy: ValidationEndStage,
	}
}
