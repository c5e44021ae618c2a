package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

func TestCodeGenerator_Generate(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		taken    map[string]bool
		expected string
		draws    int
	}{
		{
			name:     "First draw is free",
			values:   []int{10, 11, 12, 1, 2, 3},
			taken:    map[string]bool{},
			expected: "ABC123",
			draws:    6,
		},
		{
			name:     "Resamples on collision",
			values:   []int{0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6},
			taken:    map[string]bool{"000000": true},
			expected: "123456",
			draws:    12,
		},
		{
			name:     "Resamples until unique",
			values:   []int{35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 34, 34, 34, 34, 34, 34},
			taken:    map[string]bool{"ZZZZZZ": true},
			expected: "YYYYYY",
			draws:    18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{values: tt.values}
			g := NewCodeGenerator(src)

			code := g.Generate(func(code string) bool { return tt.taken[code] })

			assert.Equal(t, tt.expected, code)
			assert.Equal(t, tt.draws, src.calls)
		})
	}
}

func TestCodeGenerator_DefaultSource(t *testing.T) {
	g := NewCodeGenerator(nil)
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		code := g.Generate(func(code string) bool { return seen[code] })
		assert.True(t, IsValidReferralCode(code), "generated code %q", code)
		assert.False(t, seen[code])
		seen[code] = true
	}
}

func TestIsValidReferralCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"ABC123", true},
		{"000000", true},
		{"abc123", false},
		{"ABC12", false},
		{"ABC1234", false},
		{"ABC-12", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidReferralCode(tt.code))
		})
	}
}

func TestNormalizeReferralCode(t *testing.T) {
	assert.Equal(t, "DEF456", NormalizeReferralCode("  def456 "))
	assert.Equal(t, "", NormalizeReferralCode("   "))
}
