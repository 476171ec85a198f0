package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Furqanhalari/travel-goals/applications/destination"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"
)

// HistoryMessage is one prior turn of the conversation, kept client-side.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResult carries the assistant's reply. Success is false only when
// the user sent nothing usable; degraded replies still report success.
type ChatResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// systemPrompt embeds the live catalog so answers stay grounded in what
// the platform actually sells.
func systemPrompt(destinations []destination.Destination, packages []travelpackage.Package) string {
	destNames := "Various destinations available"
	if len(destinations) > 0 {
		names := make([]string, 0, 15)
		for i, d := range destinations {
			if i >= 15 {
				break
			}
			names = append(names, d.Name)
		}
		destNames = strings.Join(names, ", ")
	}

	packagesText := "Multiple packages available"
	if len(packages) > 0 {
		var lines []string
		for i, p := range packages {
			if i >= 10 {
				break
			}
			if p.DestinationName != "" {
				lines = append(lines, fmt.Sprintf("- %s (%s, %d days, from $%.0f)",
					p.Name, p.DestinationName, p.DurationDays, p.EconomyAdultPrice))
			} else {
				lines = append(lines, fmt.Sprintf("- %s (from $%.0f)", p.Name, p.EconomyAdultPrice))
			}
		}
		packagesText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are a friendly and helpful travel assistant for "Travel Goals" - a premium travel booking platform.

AVAILABLE DESTINATIONS:
%s

FEATURED PACKAGES:
%s

GUIDELINES:
1. Be friendly, enthusiastic, and concise (max 100 words)
2. Recommend specific destinations and packages from our list
3. Use travel emojis sparingly
4. When asked about booking, direct users to the Booking page
5. Highlight package features: duration, price, inclusions
6. For destinations not in our list, suggest similar available options
7. Cannot process payments or access personal booking history
8. If unsure, ask clarifying questions about preferences (budget, climate, activities)

Provide helpful, personalized travel advice and recommendations!`, destNames, packagesText)
}

// Chat answers one user message with the conversation history for
// context. Provider failures fall back to keyword-routed canned replies.
func (c *Client) Chat(ctx context.Context, userMessage string, destinations []destination.Destination, packages []travelpackage.Package, history []HistoryMessage) ChatResult {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return ChatResult{Success: false, Message: "Please enter a message."}
	}

	messages := []message{{Role: "system", Content: systemPrompt(destinations, packages)}}
	start := 0
	if len(history) > 10 {
		start = len(history) - 10
	}
	for _, h := range history[start:] {
		role := "assistant"
		if h.Role == "user" {
			role = "user"
		}
		messages = append(messages, message{Role: role, Content: h.Content})
	}
	messages = append(messages, message{Role: "user", Content: userMessage})

	resp, err := c.complete(ctx, completionRequest{
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		slog.Warn("assistant chat falling back", "error", err)
		return fallbackReply(userMessage)
	}
	return ChatResult{Success: true, Message: strings.TrimSpace(resp.Choices[0].Message.Content)}
}

// fallbackReply routes on keywords so common questions still get a
// useful answer when the provider is down.
func fallbackReply(userMessage string) ChatResult {
	lower := strings.ToLower(userMessage)
	switch {
	case containsAny(lower, "book", "booking", "reserve"):
		return ChatResult{Success: true, Message: "To make a booking, please visit our Booking page where you can submit your travel details. Our team will get back to you within 24 hours!"}
	case containsAny(lower, "price", "cost", "how much", "cheap", "budget"):
		return ChatResult{Success: true, Message: "Our packages range from $900 to $2500+ depending on destination and duration. Visit the Packages page to see all options with detailed pricing!"}
	case containsAny(lower, "destination", "where", "place", "country"):
		return ChatResult{Success: true, Message: "We offer amazing destinations including Paris, Tokyo, Dubai, Bali, Barcelona, London, and more! Check our Destinations page for the full list."}
	default:
		return ChatResult{Success: false, Message: "Sorry, I encountered a temporary issue. Please try again in a moment."}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
