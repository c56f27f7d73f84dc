package query

import (
	"fmt"
	"testing"

	"truestate/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		limit    int
		total    int64
		expected Window
	}{
		{
			name:     "third page of 25",
			page:     3,
			limit:    10,
			total:    25,
			expected: Window{Page: 3, Limit: 10, Offset: 20, Count: 5, TotalItems: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:     "first page",
			page:     1,
			limit:    10,
			total:    25,
			expected: Window{Page: 1, Limit: 10, Offset: 0, Count: 10, TotalItems: 25, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name:     "empty result keeps one page",
			page:     1,
			limit:    10,
			total:    0,
			expected: Window{Page: 1, Limit: 10, Offset: 0, Count: 0, TotalItems: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name:     "past the end is empty not an error",
			page:     9,
			limit:    10,
			total:    25,
			expected: Window{Page: 9, Limit: 10, Offset: 80, Count: 0, TotalItems: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:     "exact multiple",
			page:     2,
			limit:    5,
			total:    10,
			expected: Window{Page: 2, Limit: 5, Offset: 5, Count: 5, TotalItems: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveWindow(models.PageWindow{Page: tc.page, Limit: tc.limit}, tc.total)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolveWindow_CountMatchesSlice(t *testing.T) {
	records := make([]int, 37)
	for i := range records {
		records[i] = i
	}

	for _, limit := range []int{1, 7, 10, 37, 100} {
		for page := 1; page <= 6; page++ {
			t.Run(fmt.Sprintf("limit=%d page=%d", limit, page), func(t *testing.T) {
				w := ResolveWindow(models.PageWindow{Page: page, Limit: limit}, int64(len(records)))
				slice := SliceWindow(records, w.Offset, limit)

				assert.Equal(t, (page-1)*limit, w.Offset)
				assert.Len(t, slice, w.Count)
				assert.Equal(t, w.Page < w.TotalPages, w.HasNext)
				assert.Equal(t, page > 1, w.HasPrev)
			})
		}
	}
}

func TestWindow_Pagination(t *testing.T) {
	w := ResolveWindow(models.PageWindow{Page: 2, Limit: 10}, 25)

	assert.Equal(t, models.Pagination{
		CurrentPage:     2,
		TotalPages:      3,
		TotalItems:      25,
		ItemsPerPage:    10,
		HasNextPage:     true,
		HasPreviousPage: true,
	}, w.Pagination())
}

func TestSliceWindow_Bounds(t *testing.T) {
	records := []string{"a", "b", "c"}

	assert.Equal(t, []string{"b", "c"}, SliceWindow(records, 1, 10))
	assert.Empty(t, SliceWindow(records, 3, 10))
	assert.Empty(t, SliceWindow(records, 0, 0))
	assert.Equal(t, []string{"a"}, SliceWindow(records, -1, 1))
}
