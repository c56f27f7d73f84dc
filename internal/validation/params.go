package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"truestate/internal/dto"
	"truestate/internal/models"
)

// dateLayouts are tried in order when parsing a date bound.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalizer turns untrusted listing parameters into bounded values.
// It never fails: invalid input degrades to a default.
type Normalizer struct {
	validator    *Validator
	defaultLimit int
	maxLimit     int
}

// NewNormalizer returns a Normalizer with the given page size default and ceiling.
func NewNormalizer(defaultLimit, maxLimit int) *Normalizer {
	if maxLimit < 1 {
		maxLimit = models.MaxPageLimit
	}
	if defaultLimit < 1 || defaultLimit > maxLimit {
		defaultLimit = models.DefaultPageLimit
	}
	return &Normalizer{
		validator:    GetValidator(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

var defaultNormalizer = NewNormalizer(models.DefaultPageLimit, models.MaxPageLimit)

// NormalizePage parses a 1-based page index, falling back to 1.
func NormalizePage(raw string) int {
	return defaultNormalizer.NormalizePage(raw)
}

// NormalizeLimit parses a page size, falling back to 10 and clamping to [1, 100].
func NormalizeLimit(raw string) int {
	return defaultNormalizer.NormalizeLimit(raw)
}

// NormalizeSort whitelists the sort field and direction.
func NormalizeSort(sortBy, sortOrder string) models.SortSpec {
	return defaultNormalizer.NormalizeSort(sortBy, sortOrder)
}

// NormalizePage parses a 1-based page index. Invalid, zero or negative input gives 1.
func (n *Normalizer) NormalizePage(raw string) int {
	page, ok := leadingInt(raw)
	if !ok || page < 1 {
		return 1
	}
	return page
}

// NormalizeLimit parses a page size. Invalid or zero input gives the default
// limit; the result is clamped to [1, maxLimit].
func (n *Normalizer) NormalizeLimit(raw string) int {
	limit, ok := leadingInt(raw)
	if !ok || limit == 0 {
		return n.defaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > n.maxLimit {
		return n.maxLimit
	}
	return limit
}

// NormalizeSort keeps sortBy and sortOrder only when they pass the sort_field
// and sort_order tags, otherwise date and desc.
func (n *Normalizer) NormalizeSort(sortBy, sortOrder string) models.SortSpec {
	spec := models.DefaultSortSpec
	if n.validator.Is(sortBy, "sort_field") {
		spec.Field = models.SortField(sortBy)
	}
	if n.validator.Is(sortOrder, "sort_order") {
		spec.Order = models.SortOrder(sortOrder)
	}
	return spec
}

// NormalizeDateRange parses both bounds. When any supplied bound is
// unparseable both are dropped. A date-only bound is midnight UTC, so an end
// bound of "2024-01-31" excludes later times on that day.
func NormalizeDateRange(start, end string) (*time.Time, *time.Time) {
	var from, to *time.Time

	if s := strings.TrimSpace(start); s != "" {
		t, ok := parseDate(s)
		if !ok {
			return nil, nil
		}
		from = &t
	}

	if s := strings.TrimSpace(end); s != "" {
		t, ok := parseDate(s)
		if !ok {
			return nil, nil
		}
		to = &t
	}

	return from, to
}

// ParseMultiValue splits each raw value on commas, trims the parts and drops
// empties. Order is kept and duplicates are not removed.
func ParseMultiValue(raw ...string) []string {
	values := []string{}
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}

// NormalizeListQuery composes every normalizer over a bound query string.
func (n *Normalizer) NormalizeListQuery(q *dto.ListTransactionsQuery) models.ListParams {
	values := make(map[models.FilterField][]string, len(models.FilterFields))
	for _, field := range models.FilterFields {
		if selected := ParseMultiValue(q.RawFilter(field)...); len(selected) > 0 {
			values[field] = selected
		}
	}

	from, to := NormalizeDateRange(q.StartDate, q.EndDate)

	return models.ListParams{
		Filters: models.FilterSelection{
			Search:    q.Search,
			Values:    values,
			StartDate: from,
			EndDate:   to,
		},
		Sort: n.NormalizeSort(q.SortBy, q.SortOrder),
		Page: models.PageWindow{
			Page:  n.NormalizePage(q.Page),
			Limit: n.NormalizeLimit(q.Limit),
		},
	}
}

// ParseDate parses raw with the accepted date layouts, in UTC.
func ParseDate(raw string) (time.Time, bool) {
	return parseDate(strings.TrimSpace(raw))
}

// ParseLeadingInt is the lenient integer parse used for page and limit.
func ParseLeadingInt(raw string) (int, bool) {
	return leadingInt(raw)
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// leadingInt parses an optional sign followed by the leading run of digits,
// ignoring anything after it. "12abc" yields 12, "abc" fails.
func leadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	negative := false
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		n = math.MaxInt32
	}
	if negative {
		n = -n
	}
	return n, true
}
