package validation

import (
	"testing"
	"time"

	"truestate/internal/dto"
	"truestate/internal/models"

	"github.com/stretchr/testify/suite"
)

type ParamsTestSuite struct {
	suite.Suite
}

func TestParamsTestSuite(t *testing.T) {
	suite.Run(t, new(ParamsTestSuite))
}

func (s *ParamsTestSuite) TestNormalizePage() {
	testCases := []struct {
		name     string
		raw      string
		expected int
	}{
		{"empty", "", 1},
		{"valid", "3", 3},
		{"zero", "0", 1},
		{"negative", "-4", 1},
		{"garbage", "abc", 1},
		{"leading digits", "7xyz", 7},
		{"whitespace", "  2 ", 2},
		{"decimal truncates", "2.9", 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, NormalizePage(tc.raw))
		})
	}
}

func (s *ParamsTestSuite) TestNormalizeLimit() {
	testCases := []struct {
		name     string
		raw      string
		expected int
	}{
		{"empty uses default", "", 10},
		{"garbage uses default", "many", 10},
		{"zero uses default", "0", 10},
		{"negative clamps to one", "-3", 1},
		{"within bounds", "25", 25},
		{"upper clamp", "1000", 100},
		{"exact max", "100", 100},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, NormalizeLimit(tc.raw))
		})
	}
}

func (s *ParamsTestSuite) TestNormalizer_CustomBounds() {
	n := NewNormalizer(20, 50)

	s.Equal(20, n.NormalizeLimit(""))
	s.Equal(50, n.NormalizeLimit("75"))

	fallback := NewNormalizer(500, 50)
	s.Equal(models.DefaultPageLimit, fallback.NormalizeLimit(""))
}

func (s *ParamsTestSuite) TestNormalizeSort() {
	testCases := []struct {
		name     string
		sortBy   string
		order    string
		expected models.SortSpec
	}{
		{"defaults", "", "", models.SortSpec{Field: models.SortByDate, Order: models.SortDescending}},
		{"quantity asc", "quantity", "asc", models.SortSpec{Field: models.SortByQuantity, Order: models.SortAscending}},
		{"customer name desc", "customerName", "desc", models.SortSpec{Field: models.SortByCustomerName, Order: models.SortDescending}},
		{"unknown field", "price", "asc", models.SortSpec{Field: models.SortByDate, Order: models.SortAscending}},
		{"unknown order", "quantity", "up", models.SortSpec{Field: models.SortByQuantity, Order: models.SortDescending}},
		{"case sensitive", "Date", "ASC", models.SortSpec{Field: models.SortByDate, Order: models.SortDescending}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, NormalizeSort(tc.sortBy, tc.order))
		})
	}
}

func (s *ParamsTestSuite) TestNormalizeDateRange_BothValid() {
	from, to := NormalizeDateRange("2024-01-01", "2024-01-31")

	s.Require().NotNil(from)
	s.Require().NotNil(to)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *from)
	s.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *to)
}

func (s *ParamsTestSuite) TestNormalizeDateRange_DateOnlyEndIsMidnight() {
	_, to := NormalizeDateRange("", "2024-01-31")

	s.Require().NotNil(to)
	s.True(time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC).After(*to))
	s.True(to.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
}

func (s *ParamsTestSuite) TestNormalizeDateRange_OneBound() {
	from, to := NormalizeDateRange("2024-03-05T10:00:00Z", "")

	s.Require().NotNil(from)
	s.Nil(to)
	s.Equal(10, from.Hour())

	from, to = NormalizeDateRange("", "2024-03-05 08:30:00")
	s.Nil(from)
	s.Require().NotNil(to)
	s.Equal(8, to.Hour())
}

func (s *ParamsTestSuite) TestNormalizeDateRange_InvalidBoundDiscardsBoth() {
	from, to := NormalizeDateRange("2024-01-01", "invalid")
	s.Nil(from)
	s.Nil(to)

	from, to = NormalizeDateRange("2024-13-45", "2024-01-31")
	s.Nil(from)
	s.Nil(to)
}

func (s *ParamsTestSuite) TestParseMultiValue() {
	s.Equal([]string{"a", "b", "b"}, ParseMultiValue("a, b, b"))
	s.Equal([]string{"North", "South"}, ParseMultiValue(" North ,, South , "))
	s.Equal([]string{"x", "y", "z"}, ParseMultiValue("x", "y,z"))
	s.Empty(ParseMultiValue())
	s.Empty(ParseMultiValue("", " , "))
}

func (s *ParamsTestSuite) TestNormalizeListQuery() {
	n := NewNormalizer(10, 100)
	q := &dto.ListTransactionsQuery{
		Search:    "  jane ",
		Region:    []string{"North,South"},
		Gender:    []string{"Female"},
		Tags:      []string{""},
		StartDate: "2024-01-01",
		EndDate:   "bad",
		SortBy:    "quantity",
		SortOrder: "asc",
		Page:      "3",
		Limit:     "500",
	}

	params := n.NormalizeListQuery(q)

	s.Equal("  jane ", params.Filters.Search)
	s.Equal([]string{"North", "South"}, params.Filters.Selected(models.FilterRegion))
	s.Equal([]string{"Female"}, params.Filters.Selected(models.FilterGender))
	s.NotContains(params.Filters.Values, models.FilterTags)
	s.Nil(params.Filters.StartDate)
	s.Nil(params.Filters.EndDate)
	s.Equal(models.SortSpec{Field: models.SortByQuantity, Order: models.SortAscending}, params.Sort)
	s.Equal(models.PageWindow{Page: 3, Limit: 100}, params.Page)
}

func (s *ParamsTestSuite) TestValidatorCustomTags() {
	v := GetValidator()

	s.True(v.Is("26-35", "age_range"))
	s.False(v.Is("20-30", "age_range"))
	s.True(v.Is("paymentMethod", "filter_field"))
	s.False(v.Is("price", "filter_field"))
}
