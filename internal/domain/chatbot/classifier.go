// Package chatbot maps free-text citizen queries to canned help desk
// responses. Matching is an ordered rule table: the first rule whose
// trigger set matches the normalized input wins, and inputs no rule claims
// get a fixed fallback response.
package chatbot

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embeddedRules []byte

// FallbackResponse is returned when no rule matches the input.
const FallbackResponse = "Sorry, I couldn't understand. Please submit your issue for manual review."

// FallbackCategory labels fallback results in logs and metrics.
const FallbackCategory = "fallback"

// Rule is one entry of the ordered table: a category, its trigger terms,
// and the canned response returned verbatim when a trigger matches.
type Rule struct {
	Category string   `yaml:"category"`
	Triggers []string `yaml:"triggers"`
	Response string   `yaml:"response"`
}

type ruleTable struct {
	Rules []Rule `yaml:"rules"`
}

type compiledRule struct {
	category string
	pattern  *regexp.Regexp
	response string
}

// Result is the outcome of classifying one input. Matched is false when the
// input fell through to the fallback response.
type Result struct {
	Category string
	Response string
	Matched  bool
}

// Classifier evaluates the ordered rule table. It holds no mutable state
// after construction and is safe for concurrent use.
type Classifier struct {
	rules    []compiledRule
	fallback string
}

// NewClassifier builds a classifier from the embedded rule table.
func NewClassifier() (*Classifier, error) {
	var table ruleTable
	if err := yaml.Unmarshal(embeddedRules, &table); err != nil {
		return nil, fmt.Errorf("failed to parse embedded rule table: %w", err)
	}
	return NewClassifierFromRules(table.Rules, FallbackResponse)
}

// NewClassifierFromRules builds a classifier from an explicit rule list,
// preserving declaration order. Trigger terms are compiled into a single
// case-insensitive word-boundary alternation per rule.
func NewClassifierFromRules(rules []Rule, fallback string) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule table is empty")
	}
	if fallback == "" {
		return nil, fmt.Errorf("fallback response is required")
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if r.Category == "" {
			return nil, fmt.Errorf("rule has no category")
		}
		if len(r.Triggers) == 0 {
			return nil, fmt.Errorf("rule %q has no triggers", r.Category)
		}
		if strings.TrimSpace(r.Response) == "" {
			return nil, fmt.Errorf("rule %q has no response", r.Category)
		}

		terms := make([]string, 0, len(r.Triggers))
		for _, t := range r.Triggers {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				return nil, fmt.Errorf("rule %q has an empty trigger term", r.Category)
			}
			terms = append(terms, regexp.QuoteMeta(t))
		}

		// Word boundaries keep short tokens like "light" from matching
		// inside longer words ("flight", "delight").
		pattern, err := regexp.Compile(`(?i)\b(?:` + strings.Join(terms, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("rule %q has an invalid trigger set: %w", r.Category, err)
		}

		compiled = append(compiled, compiledRule{
			category: r.Category,
			pattern:  pattern,
			response: strings.TrimRight(r.Response, "\n"),
		})
	}

	return &Classifier{rules: compiled, fallback: fallback}, nil
}

// Classify returns the canned response for the input. The input is trimmed
// and lowercased before matching; rules are evaluated in declaration order
// and the first match wins. Empty input matches nothing and yields the
// fallback, like any other unclassified text.
func (c *Classifier) Classify(input string) Result {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, r := range c.rules {
		if r.pattern.MatchString(normalized) {
			return Result{
				Category: r.category,
				Response: r.response,
				Matched:  true,
			}
		}
	}

	return Result{
		Category: FallbackCategory,
		Response: c.fallback,
		Matched:  false,
	}
}

// Categories returns the rule categories in declaration order.
func (c *Classifier) Categories() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.category
	}
	return out
}

// ResponseFor returns the canned response of a category, or false when the
// table has no such rule.
func (c *Classifier) ResponseFor(category string) (string, bool) {
	for _, r := range c.rules {
		if r.category == category {
			return r.response, true
		}
	}
	return "", false
}
