package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
)

// ReviewSummary is the sentiment digest shown on package pages.
type ReviewSummary struct {
	Summary      string   `json:"summary"`
	Sentiment    string   `json:"sentiment"`
	KeyPoints    []string `json:"key_points"`
	Pros         []string `json:"pros,omitempty"`
	Cons         []string `json:"cons,omitempty"`
	TotalReviews int      `json:"total_reviews"`
	AvgRating    float64  `json:"avg_rating"`
}

// SummarizeReviews turns a rating distribution into a sentiment summary.
// Two or fewer ratings get a statistical stub; provider failures get
// a plain numeric fallback. Never errors.
func (c *Client) SummarizeReviews(ctx context.Context, ratings []int, packageName string) ReviewSummary {
	if len(ratings) == 0 {
		return ReviewSummary{
			Summary:   "No reviews yet. Be the first to share your experience!",
			Sentiment: "neutral",
			KeyPoints: []string{},
		}
	}

	var sum int
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range ratings {
		sum += r
		if r >= 1 && r <= 5 {
			dist[r]++
		}
	}
	avg := float64(sum) / float64(len(ratings))
	avgRounded := math.Round(avg*10) / 10

	if len(ratings) <= 2 {
		points := make([]string, 0, len(ratings))
		for _, r := range ratings {
			points = append(points, fmt.Sprintf("Recent Customer Rating: %d/5", r))
		}
		return ReviewSummary{
			Summary:      fmt.Sprintf("Based on %d initial rating(s). Not enough data for a deep-dive.", len(ratings)),
			Sentiment:    "neutral",
			KeyPoints:    points,
			Pros:         []string{"Growing interest"},
			Cons:         []string{},
			TotalReviews: len(ratings),
			AvgRating:    avgRounded,
		}
	}

	fallback := ReviewSummary{
		Summary:      fmt.Sprintf("Based on %d reviews (avg %.1f/5). Check individual reviews for details.", len(ratings), avg),
		Sentiment:    "mixed",
		KeyPoints:    []string{},
		TotalReviews: len(ratings),
		AvgRating:    avgRounded,
	}
	if !c.Ready() {
		return fallback
	}

	prompt := fmt.Sprintf(`You are analyzing customer satisfaction for "%s" based on numerical ratings.

REVIEWS DATA:
Total Ratings: %d
Average Score: %.1f/5
Distribution:
- 5 Stars: %d
- 4 Stars: %d
- 3 Stars: %d
- 2 Stars: %d
- 1 Star: %d

TASK:
Provide a concise psychological summary of customer sentiment based strictly on this rating distribution.
For example, if most are 5-star, it's "highly reliable". If there's a lot of 1-star, it "needs immediate improvement".

RESPONSE FORMAT (Strict JSON only):
{
  "summary": "<2-3 sentence overall sentiment analysis>",
  "sentiment": "<positive|mixed|negative>",
  "key_points": [
    "<statistical highlight 1>",
    "<statistical highlight 2>",
    "<statistical highlight 3>"
  ],
  "pros": ["<what high ratings imply>", "Great consistency"],
  "cons": ["<what lower ratings suggest>", "Potential areas for refinement"]
}`,
		packageName, len(ratings), avg, dist[5], dist[4], dist[3], dist[2], dist[1])

	resp, err := c.complete(ctx, completionRequest{
		Messages: []message{
			{Role: "system", Content: "You are a helpful travel review analyst."},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.3,
		MaxTokens:      500,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		slog.Warn("review summarization failed", "error", err)
		return fallback
	}

	var summary ReviewSummary
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &summary); err != nil {
		slog.Warn("review summary returned unparseable JSON", "error", err)
		return fallback
	}
	summary.TotalReviews = len(ratings)
	summary.AvgRating = avgRounded
	return summary
}
