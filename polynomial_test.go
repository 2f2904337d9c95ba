package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRenderExpandedConstantLast covers spec.md §8 S4's literal expected
// output "y = x1^2 + 10*x2^2 + 80": the constant term must render last even
// though it has the lowest total degree.
func TestRenderExpandedConstantLast(t *testing.T) {
	p := polynomial{
		{coeff: 80, exp: map[int]int{}},
		{coeff: 1, exp: map[int]int{0: 2}},
		{coeff: 10, exp: map[int]int{1: 2}},
	}
	assert.Equal(t, "y = x1^2 + 10*x2^2 + 80", renderExpanded(p))
}

// TestRenderExpandedCrossTermBeforeSquares covers spec.md §8 S3's literal
// expected output "y = 2*x1*x4 + x1^2 + x4^2": among same-degree terms, the
// cross term sorts before the pure powers by ascending exponent key.
func TestRenderExpandedCrossTermBeforeSquares(t *testing.T) {
	p := polynomial{
		{coeff: 1, exp: map[int]int{0: 2}},
		{coeff: 1, exp: map[int]int{3: 2}},
		{coeff: 2, exp: map[int]int{0: 1, 3: 1}},
	}
	assert.Equal(t, "y = 2*x1*x4 + x1^2 + x4^2", renderExpanded(p))
}
