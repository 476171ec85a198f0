package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
)

// GenerateDescription writes marketing copy for a destination or package
// listing. There is no canned fallback for copywriting: when the
// provider is unavailable the caller gets an error and keeps whatever
// text the vendor typed.
func (c *Client) GenerateDescription(ctx context.Context, name, country, descriptionType, additionalContext string) (string, error) {
	if name == "" || country == "" {
		return "", apperr.Invalid("Please provide both destination name and country")
	}
	if !c.Ready() {
		return "", fmt.Errorf("description service unavailable")
	}
	if descriptionType == "" {
		descriptionType = "destination"
	}

	prompt := fmt.Sprintf(`You are a professional travel copywriter. Write a compelling description for:

Destination: %s, %s
Purpose: %s listing on a travel booking website

Requirements:
- 2-3 engaging sentences (100-150 words)
- Highlight main attractions and unique experiences
- Include emotional appeal (adventure, relaxation, culture)
- Use vivid, sensory language
- Target: travelers seeking authentic experiences
- Tone: Enthusiastic but professional
%s
Write ONLY the description, no preamble or labels.`,
		name, country, titleCase(descriptionType), contextLine(additionalContext))

	resp, err := c.complete(ctx, completionRequest{
		Messages: []message{
			{Role: "system", Content: "You are a professional travel copywriter."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.8,
		MaxTokens:   250,
	})
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	return cleanDescription(resp.Choices[0].Message.Content), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func contextLine(additionalContext string) string {
	if additionalContext == "" {
		return "\n"
	}
	return fmt.Sprintf("\nAdditional Context: %s\n", additionalContext)
}

// cleanDescription strips chatty preambles and markdown emphasis the
// model tends to add despite instructions.
func cleanDescription(text string) string {
	text = strings.TrimSpace(text)
	preambles := []string{"here is", "here's", "description:", "sure!", "certainly!"}
	lower := strings.ToLower(text)
	for _, p := range preambles {
		if strings.HasPrefix(lower, p) {
			if lines := strings.SplitN(text, "\n", 2); len(lines) > 1 {
				text = strings.TrimSpace(lines[1])
			}
			break
		}
	}
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	return text
}
