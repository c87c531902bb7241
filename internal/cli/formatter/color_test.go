package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationLine(t *testing.T) {
	assert.Contains(t, RecommendationLine(true, "Great sleep"), "● Great sleep")
	assert.Contains(t, RecommendationLine(false, "Drink water"), "○ Drink water")
}

func TestHeader(t *testing.T) {
	h := Header("Recommendations")
	assert.Contains(t, h, "RECOMMENDATIONS")
	assert.Contains(t, h, "───")
}
