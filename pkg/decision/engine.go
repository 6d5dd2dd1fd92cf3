// Package decision orchestrates tokenization, domain classification, stakes
// scoring, tool detection and model/policy selection into one RoutingDecision.
package decision

import (
	"fmt"
	"time"

	"github.com/routewise/router/pkg/classification"
	"github.com/routewise/router/pkg/config"
	"github.com/routewise/router/pkg/observability"
	"github.com/routewise/router/pkg/scoring"
	"github.com/routewise/router/pkg/selection"
	"github.com/routewise/router/pkg/tokenize"
	"github.com/routewise/router/pkg/tools"
)

// RoutingDecision is the routing record emitted for one request. It is owned
// by the caller, never cached, and immutable once constructed.
type RoutingDecision struct {
	Domain           string   `json:"domain"`
	Stakes           string   `json:"stakes"`
	Model            string   `json:"model"`
	ValidationPolicy string   `json:"validation_policy"`
	ToolsRequired    []string `json:"tools_required"`
	ComplexityScore  int      `json:"complexity_score"`

	// Error is set only on the fallback decision and carries the failure
	// reason. A decision with an empty Error is a full classification result.
	Error string `json:"error,omitempty"`
}

// The constant fallback returned whenever classification cannot produce a
// usable result. It is a fixed policy, not derived from partial results.
const (
	fallbackModel = "gpt_oss_20b"
	fallbackTool  = "embeddings"
)

// Fallback returns the fixed fallback decision carrying reason.
func Fallback(reason string) RoutingDecision {
	return RoutingDecision{
		Domain:           string(config.DomainUnknown),
		Stakes:           string(config.StakesMedium),
		Model:            fallbackModel,
		ValidationPolicy: string(config.ValidationEndStage),
		ToolsRequired:    []string{fallbackTool},
		Error:            reason,
	}
}

// Engine evaluates routing decisions over immutable rule tables. All state is
// established in NewEngine and read-only afterwards, so one Engine is safe
// for concurrent use without locking.
type Engine struct {
	classifier *classification.DomainClassifier
	scorer     *scoring.StakesScorer
	detector   *tools.Detector
	models     *selection.ModelSelector
	policies   *selection.PolicyMapper
}

// NewEngine validates the rule tables and builds an engine over them.
// Malformed tables are a construction-time failure: the engine cannot serve
// requests on them and no per-request recovery applies.
func NewEngine(cfg *config.RouterConfig) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("router config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule tables: %w", err)
	}

	return &Engine{
		classifier: classification.NewDomainClassifier(cfg.DomainRules),
		scorer:     scoring.NewStakesScorer(cfg.Stakes),
		detector:   tools.NewDetector(cfg.ToolRules),
		models:     selection.NewModelSelector(cfg.ModelRules, cfg.DefaultModel),
		policies:   selection.NewPolicyMapper(cfg.ValidationRules, cfg.DefaultValidationPolicy),
	}, nil
}

// Route classifies one request and assembles its RoutingDecision. The call is
// single-shot, synchronous and side-effect-free; identical text always yields
// an identical decision. Any panic inside a stage is recovered into the fixed
// fallback decision, discarding partial results so no inconsistent record can
// escape. No retries are performed.
func (e *Engine) Route(text string) (decision RoutingDecision) {
	start := time.Now()
	defer func() {
		observability.RecordRouteLatency(time.Since(start).Seconds())
	}()
	defer func() {
		if r := recover(); r != nil {
			observability.Errorf("Routing error: %v", r)
			observability.RecordFallback()
			decision = Fallback(fmt.Sprintf("%v", r))
		}
	}()

	tokens := tokenize.Tokenize(text)

	domain := e.classifier.Classify(tokens)
	score := e.scorer.Score(tokens)
	stakes := e.scorer.Stakes(domain, score)
	required := e.detector.Detect(tokens)

	model := e.models.Select(domain, stakes)
	policy := e.policies.Policy(domain, stakes)
	if model == "" || policy == "" {
		// Validated tables always carry defaults; an empty resolution means
		// the tables this engine was built on are unusable.
		observability.RecordFallback()
		return Fallback("no routing decision found")
	}

	observability.RecordDecision(string(domain), string(stakes), model)
	observability.RecordComplexityScore(score)
	observability.Debugf("Routed request: domain=%s stakes=%s model=%s score=%d tools=%v",
		domain, stakes, model, score, required)

	return RoutingDecision{
		Domain:           string(domain),
		Stakes:           string(stakes),
		Model:            model,
		ValidationPolicy: string(policy),
		ToolsRequired:    required,
		ComplexityScore:  score,
	}
}
