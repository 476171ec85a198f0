package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Furqanhalari/travel-goals/applications/travelpackage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offlineClient(t *testing.T) *Client {
	t.Setenv("GROQ_API_KEY", "")
	return New()
}

// fakeProvider serves canned chat-completions responses.
func fakeProvider(t *testing.T, respond func(r *http.Request) interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(respond(r)))
	}))
}

func textResponse(content string) interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"role": "assistant", "content": content}},
		},
	}
}

func TestClientReady(t *testing.T) {
	assert.False(t, offlineClient(t).Ready())

	t.Setenv("GROQ_API_KEY", "some-key")
	assert.True(t, New().Ready())
}

func TestChat_EmptyMessage(t *testing.T) {
	result := offlineClient(t).Chat(context.Background(), "   ", nil, nil, nil)
	assert.False(t, result.Success)
	assert.Equal(t, "Please enter a message.", result.Message)
}

func TestChat_FallbackRouting(t *testing.T) {
	c := offlineClient(t)

	cases := []struct {
		message  string
		success  bool
		contains string
	}{
		{"How do I book a trip?", true, "Booking page"},
		{"how much does Bali cost?", true, "$900 to $2500"},
		{"which country should I visit", true, "Destinations page"},
		{"tell me a joke", false, "temporary issue"},
	}
	for _, tc := range cases {
		result := c.Chat(context.Background(), tc.message, nil, nil, nil)
		assert.Equal(t, tc.success, result.Success, tc.message)
		assert.Contains(t, result.Message, tc.contains, tc.message)
	}
}

func TestChat_ProviderReply(t *testing.T) {
	srv := fakeProvider(t, func(r *http.Request) interface{} {
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// First message is the catalog-grounded system prompt.
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "Travel Goals")
		return textResponse("Bali is wonderful in June!")
	})
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, "test-key")
	result := c.Chat(context.Background(), "When should I visit Bali?", nil, nil, nil)
	assert.True(t, result.Success)
	assert.Equal(t, "Bali is wonderful in June!", result.Message)
}

func TestChat_HistoryTruncated(t *testing.T) {
	var got completionRequest
	srv := fakeProvider(t, func(r *http.Request) interface{} {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		return textResponse("ok")
	})
	defer srv.Close()

	history := make([]HistoryMessage, 30)
	for i := range history {
		history[i] = HistoryMessage{Role: "user", Content: "old"}
	}

	c := NewWithEndpoint(srv.URL, "test-key")
	c.Chat(context.Background(), "latest", nil, nil, history)

	// system + last 10 history turns + the new message
	assert.Len(t, got.Messages, 12)
	assert.Equal(t, "latest", got.Messages[len(got.Messages)-1].Content)
}

func TestQuickReplies(t *testing.T) {
	assert.Contains(t, QuickReplies("thinking about paris"), "Paris packages")
	assert.Contains(t, QuickReplies("Tokyo in spring"), "Tokyo packages")
	assert.Contains(t, QuickReplies("a tropical beach"), "Bali packages")
	assert.Contains(t, QuickReplies(""), "How to book?")
	assert.Len(t, QuickReplies("anything else"), 5)
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Golden beaches await.",
		cleanDescription("Here is the description:\nGolden beaches await."))
	assert.Equal(t, "Bold adventure awaits.",
		cleanDescription("**Bold** adventure awaits."))
	assert.Equal(t, "Plain text stays.", cleanDescription("  Plain text stays.  "))
}

func TestGenerateDescription_Validation(t *testing.T) {
	c := offlineClient(t)

	_, err := c.GenerateDescription(context.Background(), "", "France", "destination", "")
	assert.Error(t, err)

	_, err = c.GenerateDescription(context.Background(), "Paris", "France", "destination", "")
	assert.Error(t, err, "offline client cannot write copy")
}

func TestRecommendPackages_Offline(t *testing.T) {
	c := offlineClient(t)
	packages := []travelpackage.Package{{PackageID: 1, Name: "Test"}}
	assert.Empty(t, c.RecommendPackages(context.Background(), Preferences{}, packages))
}

func TestRecommendPackages_ParsesJSON(t *testing.T) {
	payload := `{"recommendations":[{"package_id":4,"match_score":92,"reasoning":"Matches the beach interest."}]}`
	srv := fakeProvider(t, func(r *http.Request) interface{} {
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		return textResponse(payload)
	})
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, "test-key")
	recs := c.RecommendPackages(context.Background(), Preferences{MaxBudget: 2000},
		[]travelpackage.Package{{PackageID: 4, Name: "Bali Escape"}})
	require.Len(t, recs, 1)
	assert.Equal(t, 4, recs[0].PackageID)
	assert.Equal(t, 92, recs[0].MatchScore)
}

func TestExtractBookingIntent_Offline(t *testing.T) {
	assert.Nil(t, offlineClient(t).ExtractBookingIntent(context.Background(), "beach trip for 2"))
}

func TestExtractBookingIntent_ToolCall(t *testing.T) {
	srv := fakeProvider(t, func(r *http.Request) interface{} {
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Tools, 1)
		assert.Equal(t, intentToolName, req.Tools[0].Function.Name)

		return map[string]interface{}{
			"choices": []map[string]interface{}{{
				"message": map[string]interface{}{
					"role": "assistant",
					"tool_calls": []map[string]interface{}{{
						"function": map[string]interface{}{
							"name":      intentToolName,
							"arguments": `{"destination_type":"Beach","destination_name":"Bali","duration_days":5,"adults":2,"max_budget":2000}`,
						},
					}},
				},
			}},
		}
	})
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, "test-key")
	intent := c.ExtractBookingIntent(context.Background(), "5-day beach trip to Bali for 2 under $2000")
	require.NotNil(t, intent)
	assert.Equal(t, "Beach", intent.DestinationType)
	assert.Equal(t, "Bali", intent.DestinationName)
	assert.Equal(t, 5, intent.DurationDays)
	assert.Equal(t, 2, intent.Adults)
	assert.Equal(t, 2000.0, intent.MaxBudget)
}

func TestSearchSummary_Fallback(t *testing.T) {
	c := offlineClient(t)
	summary := c.SearchSummary(context.Background(), "beach trip", &BookingIntent{Adults: 2}, 3)
	assert.Equal(t, "I found 3 packages matching your request!", summary)

	summary = c.SearchSummary(context.Background(), "beach trip", nil, 0)
	assert.Equal(t, "I found 0 packages matching your request!", summary)
}

func TestSummarizeReviews(t *testing.T) {
	c := offlineClient(t)

	t.Run("no ratings", func(t *testing.T) {
		s := c.SummarizeReviews(context.Background(), nil, "Bali Escape")
		assert.Equal(t, "neutral", s.Sentiment)
		assert.Contains(t, s.Summary, "No reviews yet")
		assert.Zero(t, s.TotalReviews)
	})

	t.Run("too few for analysis", func(t *testing.T) {
		s := c.SummarizeReviews(context.Background(), []int{5, 4}, "Bali Escape")
		assert.Equal(t, "neutral", s.Sentiment)
		assert.Equal(t, 2, s.TotalReviews)
		assert.Equal(t, 4.5, s.AvgRating)
		assert.Len(t, s.KeyPoints, 2)
	})

	t.Run("offline statistical fallback", func(t *testing.T) {
		s := c.SummarizeReviews(context.Background(), []int{5, 4, 3, 5}, "Bali Escape")
		assert.Equal(t, "mixed", s.Sentiment)
		assert.Equal(t, 4, s.TotalReviews)
		assert.Equal(t, 4.3, s.AvgRating)
	})
}

func TestSummarizeReviews_Provider(t *testing.T) {
	payload := `{"summary":"Customers love it.","sentiment":"positive","key_points":["Mostly 5 stars"],"pros":["Consistent"],"cons":[]}`
	srv := fakeProvider(t, func(r *http.Request) interface{} {
		return textResponse(payload)
	})
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, "test-key")
	s := c.SummarizeReviews(context.Background(), []int{5, 5, 5, 4}, "Bali Escape")
	assert.Equal(t, "positive", s.Sentiment)
	assert.Equal(t, "Customers love it.", s.Summary)
	assert.Equal(t, 4, s.TotalReviews)
	assert.Equal(t, 4.8, s.AvgRating)
}
