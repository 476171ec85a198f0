package assistant

import "strings"

// QuickReplies returns contextual suggestion chips for the chat widget.
// This is a pure lookup, no API call is made.
func QuickReplies(context string) []string {
	lower := strings.ToLower(context)
	switch {
	case strings.Contains(lower, "paris") || strings.Contains(lower, "europe"):
		return []string{
			"Paris packages",
			"Best time to visit",
			"London trips",
			"Barcelona tours",
			"How to book?",
		}
	case strings.Contains(lower, "tokyo") || strings.Contains(lower, "japan") || strings.Contains(lower, "asia"):
		return []string{
			"Tokyo packages",
			"Bali beaches",
			"Dubai luxury",
			"Best time to visit",
			"How to book?",
		}
	case strings.Contains(lower, "beach") || strings.Contains(lower, "tropical"):
		return []string{
			"Bali packages",
			"Maldives trips",
			"Hawaii tours",
			"Miami beaches",
			"Budget options",
		}
	default:
		return []string{
			"Beach destinations",
			"Adventure trips",
			"Budget-friendly options",
			"How to book?",
			"Popular packages",
		}
	}
}
