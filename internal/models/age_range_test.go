package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketForAge(t *testing.T) {
	tests := []struct {
		age   int
		label string
		ok    bool
	}{
		{17, "", false},
		{18, "18-25", true},
		{25, "18-25", true},
		{26, "26-35", true},
		{45, "36-45", true},
		{46, "46-55", true},
		{56, "56+", true},
		{99, "56+", true},
		{0, "", false},
		{-3, "", false},
	}

	for _, tt := range tests {
		label, ok := BucketForAge(tt.age)
		assert.Equal(t, tt.label, label, "age %d", tt.age)
		assert.Equal(t, tt.ok, ok, "age %d", tt.age)
	}
}

func TestIsAgeBucket(t *testing.T) {
	for _, b := range AgeBuckets {
		assert.True(t, IsAgeBucket(b.Label))
	}
	assert.False(t, IsAgeBucket("18-30"))
	assert.False(t, IsAgeBucket(""))
}

func TestValidateBuckets(t *testing.T) {
	assert.NoError(t, ValidateBuckets(AgeBuckets))

	assert.ErrorContains(t, ValidateBuckets([]AgeBucket{{Label: "a", Min: 10, Max: 5}}), "greater than max")
	assert.ErrorContains(t, ValidateBuckets([]AgeBucket{
		{Label: "a", Min: 18, Max: 30},
		{Label: "b", Min: 25, Max: 40},
	}), "overlaps")
	assert.ErrorContains(t, ValidateBuckets([]AgeBucket{
		{Label: "a", Min: 18, Max: 25},
		{Label: "b", Min: 30, Max: 40},
	}), "gap")
}
