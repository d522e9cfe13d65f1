package categorizer

import (
	"strings"

	"github.com/tirasundara/spending-dashboard/internal/domain"
)

// Rule defines a single categorization rule
type Rule interface {
	// Match reports whether the rule applies to an already lower-cased description
	Match(lowerDesc string) bool
	Category() domain.Category
}

// KeywordRule matches when the description contains any of its keywords as a substring
type KeywordRule struct {
	category domain.Category
	Keywords []string
}

// NewKeywordRule creates a new KeywordRule. Keywords are stored lower-cased.
func NewKeywordRule(category domain.Category, keywords ...string) *KeywordRule {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		lowered = append(lowered, kw)
	}

	return &KeywordRule{
		category: category,
		Keywords: lowered,
	}
}

// Match implements the Rule interface
func (r *KeywordRule) Match(lowerDesc string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerDesc, kw) {
			return true
		}
	}
	return false
}

// Category implements the Rule interface
func (r *KeywordRule) Category() domain.Category {
	return r.category
}

// DefaultRules returns the built-in rules in precedence order.
// Subscriptions must stay ahead of Shopping so "amazon prime" wins over "amazon".
func DefaultRules() []Rule {
	return []Rule{
		NewKeywordRule(domain.Dining, "starbucks", "mcdonalds", "pizza", "cafe", "eats", "taco", "food"),
		NewKeywordRule(domain.Transport, "uber", "lyft", "gas", "metro", "parking"),
		NewKeywordRule(domain.Subscriptions, "netflix", "spotify", "amazon prime", "gym", "cloud", "subscription"),
		NewKeywordRule(domain.Rent, "rent"),
		NewKeywordRule(domain.Shopping, "amazon", "walmart", "target", "apparel", "electronic", "depot"),
		NewKeywordRule(domain.Utilities, "bill", "electric", "water", "internet", "phone"),
	}
}
