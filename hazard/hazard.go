package hazard

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category is one of the fixed hazard-factor groupings of the measurement
// report. The value is the label printed in the summary.
type Category string

const (
	Physical   Category = "물리적인자"
	MetalOil   Category = "금속가공유"
	Organic    Category = "유기화합물"
	AcidAlkali Category = "산 및 알칼리류"
	Metal      Category = "금속류"
	Dust       Category = "분진류"
	Other      Category = "기타"
)

// HeaderLabel is the factor column heading. It is never a factor itself.
const HeaderLabel = "유해인자"

// ReportOrder is the order in which categories are printed in a summary.
var ReportOrder = []Category{Physical, Dust, Metal, Organic, AcidAlkali, MetalOil, Other}

// Categories lists every category, in classification priority order.
var Categories = []Category{Physical, MetalOil, Organic, AcidAlkali, Metal, Dust, Other}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Rule assigns Category to a token when any Contains keyword is a substring
// of it or the token ends with any of Suffixes, and none of Exclude occurs
// in it.
type Rule struct {
	Category Category `yaml:"category"`
	Contains []string `yaml:"contains,omitempty"`
	Suffixes []string `yaml:"suffixes,omitempty"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

// Match reports whether token satisfies the rule.
func (r Rule) Match(token string) bool {
	hit := false
	for _, kw := range r.Contains {
		if strings.Contains(token, kw) {
			hit = true
			break
		}
	}
	if !hit {
		for _, suf := range r.Suffixes {
			if strings.HasSuffix(token, suf) {
				hit = true
				break
			}
		}
	}
	if !hit {
		return false
	}
	for _, ex := range r.Exclude {
		if strings.Contains(token, ex) {
			return false
		}
	}
	return true
}

// Classifier maps factor tokens to categories with an ordered rule list.
// The first matching rule wins; a token no rule matches falls back to Other.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over rules, evaluated in the given
// order. A nil or empty slice selects DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Classifier{rules: cp}
}

// Default is the classifier built from DefaultRules.
var Default = NewClassifier(nil)

// Classify returns the category of token. ok is false when the token is
// empty after trimming or is the factor column heading.
func (c *Classifier) Classify(token string) (cat Category, ok bool) {
	token = strings.TrimSpace(strings.ReplaceAll(norm.NFC.String(token), "\n", ""))
	if token == "" || token == HeaderLabel {
		return "", false
	}
	for _, r := range c.rules {
		if r.Match(token) {
			return r.Category, true
		}
	}
	return Other, true
}

// Rules returns a copy of the classifier's rule list.
func (c *Classifier) Rules() []Rule {
	cp := make([]Rule, len(c.rules))
	copy(cp, c.rules)
	return cp
}

// Classify classifies token with the Default classifier.
func Classify(token string) (Category, bool) {
	return Default.Classify(token)
}
