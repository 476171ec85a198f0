package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Furqanhalari/travel-goals/applications/travelpackage"
)

// Preferences is what the recommendation form collects.
type Preferences struct {
	MinBudget float64  `json:"min_budget"`
	MaxBudget float64  `json:"max_budget"`
	Interests []string `json:"interests"`
	Month     string   `json:"month"`
	Duration  int      `json:"duration"`
	Travelers int      `json:"travelers"`
}

// Recommendation is one ranked pick out of the catalog.
type Recommendation struct {
	PackageID  int    `json:"package_id"`
	MatchScore int    `json:"match_score"`
	Reasoning  string `json:"reasoning"`
}

// RecommendPackages asks the model to rank the top 3 matches for the
// user's preferences. Any failure returns an empty slice; the caller
// then shows the unranked catalog.
func (c *Client) RecommendPackages(ctx context.Context, prefs Preferences, packages []travelpackage.Package) []Recommendation {
	if !c.Ready() || len(packages) == 0 {
		return []Recommendation{}
	}

	var lines []string
	for i, p := range packages {
		if i >= 25 {
			break
		}
		desc := p.Description
		if len(desc) > 100 {
			desc = desc[:100]
		}
		lines = append(lines, fmt.Sprintf(
			"ID: %d | Name: %s | Destination: %s | Price: $%.0f | Duration: %d days | Description: %s...",
			p.PackageID, p.Name, p.DestinationName, p.EconomyAdultPrice, p.DurationDays, desc))
	}

	maxBudget := "Flexible"
	if prefs.MaxBudget > 0 {
		maxBudget = fmt.Sprintf("%.0f", prefs.MaxBudget)
	}
	interests := "Any"
	if len(prefs.Interests) > 0 {
		interests = strings.Join(prefs.Interests, ", ")
	}
	month := prefs.Month
	if month == "" {
		month = "Flexible"
	}
	duration := "Any"
	if prefs.Duration > 0 {
		duration = fmt.Sprintf("%d", prefs.Duration)
	}
	travelers := prefs.Travelers
	if travelers < 1 {
		travelers = 1
	}

	prompt := fmt.Sprintf(`You are a travel recommendation expert. Based on user preferences, recommend the TOP 3 most suitable packages from the provided list.

USER PREFERENCES:
- Budget Range: $%.0f - $%s
- Interests: %s
- Travel Month: %s
- Duration: %s days
- Travelers: %d person(s)

AVAILABLE PACKAGES:
%s

TASK:
1. Analyze each package against user preferences.
2. Select the TOP 3 best matches.
3. If fewer than 3 packages are available, return all of them.

RESPONSE FORMAT (JSON only):
{
  "recommendations": [
    {
      "package_id": <id>,
      "match_score": <1-100>,
      "reasoning": "<2-3 sentences explaining why this package fits the user's preferences>"
    }
  ]
}

Rules:
- Match score represents alignment with budget and interests.
- Reasoning must be persuasive and reference specific user interests.
- Return ONLY the JSON object.`,
		prefs.MinBudget, maxBudget, interests, month, duration, travelers, strings.Join(lines, "\n"))

	resp, err := c.complete(ctx, completionRequest{
		Messages: []message{
			{Role: "system", Content: "You are a travel recommendation expert who exclusively responds in JSON format."},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.3,
		MaxTokens:      800,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		slog.Warn("package recommendation failed", "error", err)
		return []Recommendation{}
	}

	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		slog.Warn("package recommendation returned unparseable JSON", "error", err)
		return []Recommendation{}
	}
	return parsed.Recommendations
}
