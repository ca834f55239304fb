package establishment

import (
	"math"

	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

// Score is the accessibility score: the mean of the review ratings rounded
// to one decimal, or nil when there are no reviews. It is always derived
// from the live review set, never stored.
func Score(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	score := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return &score
}

// Mean is the unrounded rating mean, or nil when there are no reviews.
// Rating filters compare against it rather than the rounded Score so
// that rounding never pulls an establishment above a threshold it does
// not actually meet.
func Mean(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	mean := float64(sum) / float64(len(ratings))
	return &mean
}

// AttachScore recomputes the score from the establishment's loaded reviews.
func AttachScore(e *models.Establishment) {
	ratings := make([]int, 0, len(e.Reviews))
	for _, rv := range e.Reviews {
		ratings = append(ratings, rv.Rating)
	}
	e.AccessibilityScore = Score(ratings)
}
