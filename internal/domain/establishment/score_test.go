package establishment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

func TestScore_NoRatings(t *testing.T) {
	assert.Nil(t, Score(nil))
	assert.Nil(t, Score([]int{}))
}

func TestScore_SingleRating(t *testing.T) {
	got := Score([]int{4})
	assert.NotNil(t, got)
	assert.Equal(t, 4.0, *got)
}

func TestScore_RoundsToOneDecimal(t *testing.T) {
	// mean of 5, 4, 5 is 4.666..., rounded to 4.7
	got := Score([]int{5, 4, 5})
	assert.NotNil(t, got)
	assert.Equal(t, 4.7, *got)
}

func TestScore_HalfwayRoundsUp(t *testing.T) {
	// mean of 1 and 2 is 1.5, stays 1.5
	got := Score([]int{1, 2})
	assert.NotNil(t, got)
	assert.Equal(t, 1.5, *got)
}

func TestMean_IsNotRounded(t *testing.T) {
	assert.Nil(t, Mean(nil))

	got := Mean([]int{5, 5, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4})
	require.NotNil(t, got)
	assert.InDelta(t, 4.4615, *got, 0.0001)
	assert.Less(t, *got, 4.5)
}

func TestAttachScore_WithoutReviews(t *testing.T) {
	e := &models.Establishment{}
	AttachScore(e)
	assert.Nil(t, e.AccessibilityScore)
}

func TestAttachScore_WithReviews(t *testing.T) {
	e := &models.Establishment{
		Reviews: []models.Review{
			{Rating: 5},
			{Rating: 3},
		},
	}
	AttachScore(e)
	assert.NotNil(t, e.AccessibilityScore)
	assert.Equal(t, 4.0, *e.AccessibilityScore)
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("RESTAURANT"))
	assert.True(t, IsValidCategory("OTHER"))
	assert.False(t, IsValidCategory("restaurant"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("MUSEUM"))
}
