// Package classifier routes free text to a site section with ordered,
// first-match-wins keyword tables.
package classifier

import (
	"strings"

	"github.com/cecoladevelopment/site-backend/internal/models"
)

// Rule maps a keyword set to a section. Response is only set for tables
// that answer on their own, without generated text.
type Rule struct {
	Keywords []string
	Section  models.Section
	Response string
}

// matches reports whether any keyword occurs in text. text must already be
// lower case.
func (r Rule) matches(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Table is an ordered rule list. Earlier rules take precedence.
type Table struct {
	Name    string
	Rules   []Rule
	Default Rule
}

// Match returns the first rule whose keywords occur in text, ignoring case,
// or the table default when none does.
func (t Table) Match(text string) Rule {
	lower := strings.ToLower(text)
	for _, rule := range t.Rules {
		if rule.matches(lower) {
			return rule
		}
	}
	return t.Default
}

// Classify returns only the section of the matching rule.
func (t Table) Classify(text string) models.Section {
	return t.Match(text).Section
}
