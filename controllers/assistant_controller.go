package controllers

import (
	"net/http"

	"github.com/Furqanhalari/travel-goals/applications/assistant"
	"github.com/Furqanhalari/travel-goals/applications/destination"
	"github.com/Furqanhalari/travel-goals/applications/review"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"

	"github.com/labstack/echo/v4"
)

// AssistantController serves the AI travel assistant endpoints. Every
// endpoint answers even when the provider is down; catalog loads are
// best-effort context, not hard dependencies.
type AssistantController struct {
	Client *assistant.Client
}

// Chat answers one chat message with catalog context.
func (ac *AssistantController) Chat(c echo.Context) error {
	var p struct {
		Message string                     `json:"message"`
		History []assistant.HistoryMessage `json:"history"`
	}
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	destinations, _ := destination.ListDestinations()
	packages, _ := travelpackage.ListActive(0)

	result := ac.Client.Chat(c.Request().Context(), p.Message, destinations, packages, p.History)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	return c.JSON(status, envelope{"success": result.Success, "message": result.Message})
}

// QuickReplies returns suggestion chips for the chat widget.
func (ac *AssistantController) QuickReplies(c echo.Context) error {
	return ok(c, http.StatusOK, envelope{
		"replies": assistant.QuickReplies(c.QueryParam("context")),
	})
}

// Describe generates listing copy for vendors and admins.
func (ac *AssistantController) Describe(c echo.Context) error {
	var p struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Type    string `json:"type"`
		Context string `json:"context"`
	}
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	text, err := ac.Client.GenerateDescription(c.Request().Context(), p.Name, p.Country, p.Type, p.Context)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"description": text})
}

// Recommend ranks the catalog against stated preferences.
func (ac *AssistantController) Recommend(c echo.Context) error {
	var prefs assistant.Preferences
	if err := bindJSON(c, &prefs); err != nil {
		return respondError(c, err)
	}

	packages, err := travelpackage.ListActive(0)
	if err != nil {
		return respondError(c, err)
	}

	recommendations := ac.Client.RecommendPackages(c.Request().Context(), prefs, packages)
	return ok(c, http.StatusOK, envelope{
		"recommendations": recommendations,
		"ai_powered":      len(recommendations) > 0,
	})
}

// Search is the natural-language booking assistant.
func (ac *AssistantController) Search(c echo.Context) error {
	var p struct {
		Query string `json:"query"`
	}
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	result, err := ac.Client.Search(c.Request().Context(), p.Query)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{
		"query":            result.Query,
		"extracted_params": result.Intent,
		"summary":          result.Summary,
		"packages":         result.Packages,
		"total_results":    result.TotalResults,
	})
}

// ReviewSummary digests a package's rating distribution.
func (ac *AssistantController) ReviewSummary(c echo.Context) error {
	packageID, valid := pathID(c, "packageID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}

	pkg, err := travelpackage.GetActive(packageID)
	if err != nil {
		return respondError(c, err)
	}
	ratings, err := review.Ratings(packageID)
	if err != nil {
		return respondError(c, err)
	}

	summary := ac.Client.SummarizeReviews(c.Request().Context(), ratings, pkg.Name)
	return ok(c, http.StatusOK, envelope{"summary": summary})
}
