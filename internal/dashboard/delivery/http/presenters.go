package http

import (
	"time"

	"tweet-insights-srv/internal/dashboard"
)

// =====================================================
// Request DTOs
// =====================================================

type getDashboardReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (r getDashboardReq) toInput() dashboard.GetDashboardInput {
	return dashboard.GetDashboardInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type dashboardResp struct {
	StartDate            string              `json:"start_date"`
	EndDate              string              `json:"end_date"`
	DateCounts           []dateCountResp     `json:"date_counts"`
	SentimentLabelCounts []labelCountResp    `json:"sentiment_label_counts"`
	DateSentimentScores  []dateScoreResp     `json:"date_sentiment_scores"`
	LanguageCounts       []languageCountResp `json:"language_counts"`
	EntityCounts         []entityCountResp   `json:"entity_counts"`
	PopularTweets        []popularTweetResp  `json:"popular_tweets"`
}

type dateCountResp struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type labelCountResp struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type dateScoreResp struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type languageCountResp struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

type entityCountResp struct {
	Name  string  `json:"name"`
	URL   *string `json:"url"`
	Count int64   `json:"count"`
}

type popularTweetResp struct {
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
	SourceURL    string    `json:"source_url"`
	Language     string    `json:"language"`
	LikeCount    int64     `json:"like_count"`
	RetweetCount int64     `json:"retweet_count"`
	QuoteCount   int64     `json:"quote_count"`
	ReplyCount   int64     `json:"reply_count"`
}

func (h *handler) newDashboardResp(p dashboard.Payload) dashboardResp {
	resp := dashboardResp{
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		DateCounts:           make([]dateCountResp, len(p.DateCounts)),
		SentimentLabelCounts: make([]labelCountResp, len(p.SentimentLabelCounts)),
		DateSentimentScores:  make([]dateScoreResp, len(p.DateSentimentScores)),
		LanguageCounts:       make([]languageCountResp, len(p.LanguageCounts)),
		EntityCounts:         make([]entityCountResp, len(p.EntityCounts)),
		PopularTweets:        make([]popularTweetResp, len(p.PopularTweets)),
	}
	for i, d := range p.DateCounts {
		resp.DateCounts[i] = dateCountResp{Date: d.Date, Count: d.Count}
	}
	for i, s := range p.SentimentLabelCounts {
		resp.SentimentLabelCounts[i] = labelCountResp{Label: s.Label, Count: s.Count}
	}
	for i, s := range p.DateSentimentScores {
		resp.DateSentimentScores[i] = dateScoreResp{Date: s.Date, Score: s.Score}
	}
	for i, l := range p.LanguageCounts {
		resp.LanguageCounts[i] = languageCountResp{Language: l.Language, Count: l.Count}
	}
	for i, e := range p.EntityCounts {
		resp.EntityCounts[i] = entityCountResp{Name: e.Name, URL: e.URL, Count: e.Count}
	}
	for i, t := range p.PopularTweets {
		resp.PopularTweets[i] = popularTweetResp{
			Text:         t.Text,
			CreatedAt:    t.CreatedAt,
			Username:     t.Username,
			SourceURL:    t.SourceURL,
			Language:     t.Language,
			LikeCount:    t.LikeCount,
			RetweetCount: t.RetweetCount,
			QuoteCount:   t.QuoteCount,
			ReplyCount:   t.ReplyCount,
		}
	}
	return resp
}
