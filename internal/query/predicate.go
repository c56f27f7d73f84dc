// Package query composes store-agnostic retrieval predicates, orderings and
// page windows. Each store encodes a Predicate in its own query language; the
// in-memory encoding is Predicate.Matches.
package query

import (
	"slices"
	"strings"
	"time"

	"truestate/internal/models"
)

// Condition restricts one field to a set of values (OR within the field).
type Condition struct {
	Field  models.FilterField
	Values []string
}

// Contains reports whether value is one of the selected values.
func (c Condition) Contains(value string) bool {
	for _, v := range c.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Predicate is the AND of a search term, per-field conditions and date bounds.
// Zero-valued parts contribute no constraint.
type Predicate struct {
	Search     string
	Conditions []Condition
	From       *time.Time
	To         *time.Time
}

// Build composes the predicate for a filter selection. Fields with no
// selected values are omitted; search text is trimmed.
func Build(sel models.FilterSelection) Predicate {
	p := Predicate{
		Search: strings.TrimSpace(sel.Search),
		From:   sel.StartDate,
		To:     sel.EndDate,
	}

	for _, field := range models.FilterFields {
		values := sel.Selected(field)
		if len(values) == 0 {
			continue
		}
		p.Conditions = append(p.Conditions, Condition{
			Field:  field,
			Values: append([]string(nil), values...),
		})
	}

	return p
}

// IsEmpty reports whether the predicate matches every record.
func (p Predicate) IsEmpty() bool {
	return p.Search == "" && len(p.Conditions) == 0 && p.From == nil && p.To == nil
}

// Matches evaluates the predicate against a single record.
func (p Predicate) Matches(t *models.Transaction) bool {
	if p.Search != "" && !matchesSearch(t, strings.ToLower(p.Search)) {
		return false
	}

	for _, c := range p.Conditions {
		if !c.Contains(c.Field.ValueOf(t)) {
			return false
		}
	}

	if p.From != nil && t.Date.Before(*p.From) {
		return false
	}
	if p.To != nil && t.Date.After(*p.To) {
		return false
	}

	return true
}

// Filter returns the records that satisfy the predicate, preserving order.
func (p Predicate) Filter(records []models.Transaction) []models.Transaction {
	if p.IsEmpty() {
		return slices.Clone(records)
	}
	out := make([]models.Transaction, 0, len(records))
	for i := range records {
		if p.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchesSearch(t *models.Transaction, needle string) bool {
	return strings.Contains(strings.ToLower(t.CustomerName), needle) ||
		strings.Contains(strings.ToLower(t.PhoneNumber), needle)
}

// EscapeLike escapes the LIKE wildcards of s using backslash as the escape character.
func EscapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// ContainsPattern returns a lower-cased, escaped LIKE pattern matching s anywhere.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(strings.ToLower(s)) + "%"
}
