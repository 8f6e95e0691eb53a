package util

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Shoes",
			expected: "shoes",
		},
		{
			name:     "spaces become hyphens",
			input:    "Running Shoes",
			expected: "running-shoes",
		},
		{
			name:     "punctuation collapses",
			input:    "Men's  T-Shirts!",
			expected: "men-s-t-shirts",
		},
		{
			name:     "leading and trailing junk trimmed",
			input:    "  --Summer Sale--  ",
			expected: "summer-sale",
		},
		{
			name:     "digits preserved",
			input:    "Air Max 90",
			expected: "air-max-90",
		},
		{
			name:     "already a slug",
			input:    "classic-denim-jacket",
			expected: "classic-denim-jacket",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
