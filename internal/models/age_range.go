package models

import "fmt"

// AgeBucket is a named inclusive age span.
type AgeBucket struct {
	Label string
	Min   int
	Max   int
}

// AgeBuckets is ordered, contiguous and non-overlapping.
var AgeBuckets = []AgeBucket{
	{Label: "18-25", Min: 18, Max: 25},
	{Label: "26-35", Min: 26, Max: 35},
	{Label: "36-45", Min: 36, Max: 45},
	{Label: "46-55", Min: 46, Max: 55},
	{Label: "56+", Min: 56, Max: 150},
}

// BucketForAge returns the label of the first bucket containing age.
func BucketForAge(age int) (string, bool) {
	for _, b := range AgeBuckets {
		if age >= b.Min && age <= b.Max {
			return b.Label, true
		}
	}
	return "", false
}

// IsAgeBucket reports whether label names a known bucket.
func IsAgeBucket(label string) bool {
	for _, b := range AgeBuckets {
		if b.Label == label {
			return true
		}
	}
	return false
}

// ValidateBuckets checks that spans are well formed, ordered and contiguous.
func ValidateBuckets(buckets []AgeBucket) error {
	for i, b := range buckets {
		if b.Min > b.Max {
			return fmt.Errorf("bucket %s: min %d greater than max %d", b.Label, b.Min, b.Max)
		}
		if i == 0 {
			continue
		}
		prev := buckets[i-1]
		if b.Min <= prev.Max {
			return fmt.Errorf("bucket %s overlaps %s", b.Label, prev.Label)
		}
		if b.Min != prev.Max+1 {
			return fmt.Errorf("gap between %s and %s", prev.Label, b.Label)
		}
	}
	return nil
}
