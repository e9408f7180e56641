package checkers

import "context"

// GenerationChecker never fails: the service stays usable through the
// fallback generator. It only reports which mode is active.
type GenerationChecker struct {
	provider string
}

// NewGenerationChecker takes the configured provider name, or "" when no
// credential is set.
func NewGenerationChecker(provider string) *GenerationChecker {
	return &GenerationChecker{provider: provider}
}

func (c *GenerationChecker) Name() string { return "generation" }

func (c *GenerationChecker) Check(context.Context) error { return nil }

func (c *GenerationChecker) Describe() string {
	if c.provider == "" {
		return "fallback"
	}
	return "provider " + c.provider
}
