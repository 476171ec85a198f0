package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// BookingIntent is the structured filter extracted from a natural
// language search query.
type BookingIntent struct {
	DestinationType string   `json:"destination_type"`
	DestinationName string   `json:"destination_name"`
	DurationDays    int      `json:"duration_days"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	Infants         int      `json:"infants"`
	MaxBudget       float64  `json:"max_budget"`
	PreferredMonth  string   `json:"preferred_month"`
	Interests       []string `json:"interests"`
}

const intentToolName = "extract_travel_booking_params"

// intentToolSchema is the JSON-schema parameter block for the
// extraction tool, matching what the model is forced to call.
var intentToolSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"destination_type": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"Beach", "Mountain", "City", "Desert", "Island", "Cultural", "Adventure", "Any"},
			"description": "Type of destination the user wants to visit",
		},
		"destination_name": map[string]interface{}{
			"type":        "string",
			"description": "Specific destination name if mentioned (e.g., 'Paris', 'Bali')",
		},
		"duration_days": map[string]interface{}{
			"type":        "integer",
			"description": "Number of days for the trip",
		},
		"adults": map[string]interface{}{
			"type":        "integer",
			"description": "Number of adult travelers",
			"minimum":     1,
		},
		"children": map[string]interface{}{
			"type":        "integer",
			"description": "Number of child travelers",
			"minimum":     0,
		},
		"infants": map[string]interface{}{
			"type":        "integer",
			"description": "Number of infant travelers",
			"minimum":     0,
		},
		"max_budget": map[string]interface{}{
			"type":        "number",
			"description": "Maximum budget per person in USD",
		},
		"preferred_month": map[string]interface{}{
			"type":        "string",
			"description": "Preferred travel month (e.g., 'June', 'December')",
		},
		"interests": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Travel interests or activities mentioned",
		},
	},
	"required": []string{"destination_type", "adults"},
}

// ExtractBookingIntent pulls booking parameters out of a free-text
// query via forced tool calling. Nil means extraction was unavailable
// or the model produced nothing usable; the caller falls back to a
// plain search.
func (c *Client) ExtractBookingIntent(ctx context.Context, userQuery string) *BookingIntent {
	if !c.Ready() {
		return nil
	}

	choice := &toolChoice{Type: "function"}
	choice.Function.Name = intentToolName

	resp, err := c.complete(ctx, completionRequest{
		Messages: []message{
			{Role: "system", Content: "You are a travel booking assistant. Extract booking parameters from user queries using the provided tool."},
			{Role: "user", Content: userQuery},
		},
		Temperature: 0.1,
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        intentToolName,
				Description: "Extract travel booking parameters from a natural language query",
				Parameters:  intentToolSchema,
			},
		}},
		ToolChoice: choice,
	})
	if err != nil {
		slog.Warn("booking intent extraction failed", "error", err)
		return nil
	}

	calls := resp.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return nil
	}

	var intent BookingIntent
	if err := json.Unmarshal([]byte(calls[0].Function.Arguments), &intent); err != nil {
		slog.Warn("booking intent arguments unparseable", "error", err)
		return nil
	}
	if intent.DestinationType == "" {
		intent.DestinationType = "Any"
	}
	if intent.Adults < 1 {
		intent.Adults = 1
	}
	return &intent
}

// SearchSummary narrates search results in one or two sentences. The
// deterministic fallback always works.
func (c *Client) SearchSummary(ctx context.Context, query string, intent *BookingIntent, numResults int) string {
	fallback := fmt.Sprintf("I found %d packages matching your request!", numResults)
	if !c.Ready() || intent == nil {
		return fallback
	}

	duration := "flexible"
	if intent.DurationDays > 0 {
		duration = fmt.Sprintf("%d", intent.DurationDays)
	}
	budget := "flexible"
	if intent.MaxBudget > 0 {
		budget = fmt.Sprintf("%.0f", intent.MaxBudget)
	}

	prompt := fmt.Sprintf(`User asked: "%s"

We extracted these parameters:
- Destination: %s %s
- Duration: %s days
- Travelers: %d adults, %d children
- Budget: $%s per person

We found %d matching packages.

Step 1: Write a professional and helpful response in 2-3 sentences.
Step 2: Acknowledge what was understood.
Step 3: Point them to the results shown below.`,
		query, intent.DestinationType, intent.DestinationName,
		duration, intent.Adults, intent.Children, budget, numResults)

	resp, err := c.complete(ctx, completionRequest{
		Messages: []message{
			{Role: "system", Content: "You are a professional travel assistant."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		slog.Warn("search summary failed", "error", err)
		return fallback
	}
	return resp.Choices[0].Message.Content
}
