package usecase

import (
	"testing"

	"tweet-insights-srv/internal/dashboard"

	"github.com/stretchr/testify/assert"
)

func TestPopularityScore(t *testing.T) {
	tw := dashboard.PopularTweet{LikeCount: 10, RetweetCount: 2, QuoteCount: 10, ReplyCount: 5}
	assert.InDelta(t, 5+2+3+1, PopularityScore(tw), 1e-9)
}

func TestRankByPopularity_StableDescending(t *testing.T) {
	in := []dashboard.PopularTweet{
		{Text: "a", LikeCount: 2},
		{Text: "b", RetweetCount: 5},
		{Text: "c", RetweetCount: 1},
		{Text: "d", ReplyCount: 5},
	}

	got := RankByPopularity(in)
	texts := make([]string, len(got))
	for i, tw := range got {
		texts[i] = tw.Text
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, texts)
	assert.Equal(t, "a", in[0].Text)
}
