package http

import "tweet-insights-srv/internal/search"

// =====================================================
// Request DTOs
// =====================================================

type suggestReq struct {
	Query string `form:"q"`
}

func (r suggestReq) toInput() search.SuggestInput {
	return search.SuggestInput{Query: r.Query}
}

// =====================================================
// Response DTOs
// =====================================================

type suggestResp struct {
	Suggestions []string `json:"suggestions"`
}

func newSuggestResp(suggestions []string) suggestResp {
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestResp{Suggestions: suggestions}
}
