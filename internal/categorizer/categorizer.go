package categorizer

import (
	"strings"

	"github.com/tirasundara/spending-dashboard/internal/domain"
)

// RuleCategorizer implements the domain.Categorizer interface with an ordered rule list
type RuleCategorizer struct {
	rules []Rule
}

// NewRuleCategorizer creates a new RuleCategorizer with the given rules, evaluated in order
func NewRuleCategorizer(rules ...Rule) *RuleCategorizer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	return &RuleCategorizer{
		rules: rules,
	}
}

// Categorize returns the category of the first matching rule, or domain.Other
func (c *RuleCategorizer) Categorize(description string) domain.Category {
	lowerDesc := strings.ToLower(description)

	for _, rule := range c.rules {
		if rule.Match(lowerDesc) {
			return rule.Category()
		}
	}

	return domain.Other
}
