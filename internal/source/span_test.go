package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans merge",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span is a no-op",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other file ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 10}
	if !s.Contains(5) || !s.Contains(9) {
		t.Error("expected span to contain its bounds")
	}
	if s.Contains(10) || s.Contains(4) {
		t.Error("expected half-open span")
	}
}
