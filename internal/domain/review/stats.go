package review

import "math"

// Stats summarizes the ratings of one establishment. All five distribution
// buckets are always present, even at zero, so clients never handle
// missing keys.
type Stats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

func ComputeStats(ratings []int) Stats {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	sum := 0
	for _, r := range ratings {
		sum += r
		if r >= 1 && r <= 5 {
			distribution[r]++
		}
	}

	average := 0.0
	if len(ratings) > 0 {
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	return Stats{
		TotalReviews:       len(ratings),
		AverageRating:      average,
		RatingDistribution: distribution,
	}
}
