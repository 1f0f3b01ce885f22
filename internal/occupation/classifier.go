package occupation

import (
	"strings"

	"surveyclean/internal/textutil"
)

// Group ties a category to the keywords that select it.
type Group struct {
	Category Category
	Keywords []string
}

// Rules configure a Classifier.
type Rules struct {
	// Column is the header name of the classified column. Header rows that
	// leak into the data are treated as sentinels.
	Column    string
	Sentinels []string
	// Groups are tested in order; the first group with a matching keyword wins.
	Groups   []Group
	Fallback Category
}

// DefaultRules returns the curated rules for the given column. An empty
// column selects DefaultColumn.
func DefaultRules(column string) Rules {
	if strings.TrimSpace(column) == "" {
		column = DefaultColumn
	}
	return Rules{
		Column:    column,
		Sentinels: DefaultSentinels(),
		Groups: []Group{
			{Category: Student, Keywords: DefaultStudentKeywords()},
			{Category: Employed, Keywords: DefaultEmployedKeywords()},
			{Category: Other, Keywords: DefaultOtherKeywords()},
		},
		Fallback: Other,
	}
}

// Match describes how a value was classified.
type Match struct {
	Category Category
	// Keyword is the folded keyword that matched; empty for sentinels and
	// fallbacks.
	Keyword  string
	Sentinel bool
	Fallback bool
}

// Classifier applies Rules to raw answers. It is immutable after New.
type Classifier struct {
	sentinels map[string]struct{}
	groups    []Group
	fallback  Category
}

// New builds a Classifier. Keywords are folded once here so Classify only
// folds the input.
func New(rules Rules) *Classifier {
	c := &Classifier{
		sentinels: make(map[string]struct{}, len(rules.Sentinels)+1),
		groups:    make([]Group, 0, len(rules.Groups)),
		fallback:  rules.Fallback,
	}
	for _, s := range rules.Sentinels {
		c.sentinels[s] = struct{}{}
	}
	if rules.Column != "" {
		c.sentinels[rules.Column] = struct{}{}
	}
	for _, g := range rules.Groups {
		keywords := textutil.FoldAll(g.Keywords)
		if len(keywords) == 0 {
			continue
		}
		c.groups = append(c.groups, Group{Category: g.Category, Keywords: keywords})
	}
	return c
}

// Classify returns the category for raw.
func (c *Classifier) Classify(raw string) Category {
	return c.Match(raw).Category
}

// Match classifies raw and reports which rule decided it.
func (c *Classifier) Match(raw string) Match {
	if raw == "" {
		return Match{Category: None, Sentinel: true}
	}
	if _, ok := c.sentinels[raw]; ok {
		return Match{Category: None, Sentinel: true}
	}

	folded := textutil.Fold(raw)
	for _, g := range c.groups {
		for _, kw := range g.Keywords {
			if strings.Contains(folded, kw) {
				return Match{Category: g.Category, Keyword: kw}
			}
		}
	}
	return Match{Category: c.fallback, Fallback: true}
}

var defaultClassifier = New(DefaultRules(DefaultColumn))

// Classify classifies raw with DefaultRules for DefaultColumn.
func Classify(raw string) Category {
	return defaultClassifier.Classify(raw)
}
